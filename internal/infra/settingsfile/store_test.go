package settingsfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const sampleSettings = `{
  "env": {
    "ANTHROPIC_AUTH_TOKEN": "sk-old",
    "ANTHROPIC_BASE_URL": "https://api.anthropic.com",
    "MAX_THINKING_TOKENS": 1024
  },
  "permissions": {
    "allow": ["Bash(ls:*)"],
    "deny": [],
    "defaultMode": "acceptEdits"
  },
  "feedbackSurveyState": {
    "lastShownTime": 1754000000000
  },
  "model": "opus",
  "hooks": {"PreToolUse": [{"matcher": "Bash"}]}
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRead_MissingFileIsNotFound(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	_, err := s.Read()
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestRead_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, "{not json")

	_, err := NewStore(path).Read()
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
	assert.Contains(t, err.Error(), path)
}

func TestRead_DecodesKnownBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, sampleSettings)

	st, err := NewStore(path).Read()
	require.NoError(t, err)

	assert.Equal(t, "sk-old", st.Env[domain.EnvAuthToken])
	assert.Equal(t, "1024", st.Env["MAX_THINKING_TOKENS"])
	assert.Equal(t, []string{"Bash(ls:*)"}, st.Permissions["allow"])
	assert.Equal(t, []string{}, st.Permissions["deny"])
	assert.Contains(t, st.PermissionOptions, "defaultMode")
	assert.Equal(t, int64(1754000000000), st.FeedbackSurveyState["lastShownTime"])
	assert.Contains(t, st.Extra, "model")
	assert.Contains(t, st.Extra, "hooks")
}

func TestWrite_RoundTripPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, sampleSettings)
	store := NewStore(path)

	st, err := store.Read()
	require.NoError(t, err)

	updated := domain.ApplyPreset(st, domain.Preset{
		Name:                       "gw",
		AuthToken:                  "sk-new",
		BaseURL:                    "https://gw.example",
		MaxOutputTokens:            "8192",
		DisableNonessentialTraffic: "1",
	})
	require.NoError(t, store.Write(updated))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	assert.Equal(t, "opus", doc["model"])
	assert.NotNil(t, doc["hooks"])

	env := doc["env"].(map[string]any)
	assert.Equal(t, "sk-new", env[domain.EnvAuthToken])
	assert.Equal(t, "https://gw.example", env[domain.EnvBaseURL])
	assert.Equal(t, "8192", env[domain.EnvMaxOutputTokens])
	assert.Equal(t, "1", env[domain.EnvDisableNonessentialTraffic])

	perms := doc["permissions"].(map[string]any)
	assert.Equal(t, "acceptEdits", perms["defaultMode"])
	assert.Len(t, perms["allow"], 1)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "tmp file should be renamed away")
}

func TestWrite_CreatesDirectoryAndOmitsAbsentSurvey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".claude", "settings.json")
	store := NewStore(path)

	require.NoError(t, store.Write(domain.NewSettings()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), keySurvey)
	assert.Contains(t, string(b), `"env": {}`)
}

func TestWrite_KeepsExistingMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, "{}")
	require.NoError(t, os.Chmod(path, 0o640))

	require.NoError(t, NewStore(path).Write(domain.NewSettings()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestDecode_EmptyDocument(t *testing.T) {
	st, err := Decode([]byte("  \n"))
	require.NoError(t, err)
	assert.NotNil(t, st.Env)
	assert.Nil(t, st.FeedbackSurveyState)
}

func TestDecode_RejectsNestedEnvValues(t *testing.T) {
	_, err := Decode([]byte(`{"env": {"X": {"nested": true}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env.X")
}

func TestQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, sampleSettings)
	store := NewStore(path)

	got, err := store.Query("$.env.ANTHROPIC_BASE_URL")
	require.NoError(t, err)
	assert.Equal(t, "https://api.anthropic.com", got)

	got, err = store.Query("permissions.defaultMode")
	require.NoError(t, err)
	assert.Equal(t, "acceptEdits", got)

	_, err = store.Query("$.env.NOPE")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)

	_, err = store.Query(" ")
	require.Error(t, err)
}
