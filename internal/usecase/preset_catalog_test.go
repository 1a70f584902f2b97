package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func TestPresetCatalog_AddRejectsEmptyAndDuplicateNames(t *testing.T) {
	store := &memPresets{}
	rec := &recorder{}
	c := NewPresetCatalog(store, WithEvents(rec))

	_, err := c.Add(preset("  Work  ", "t1", "https://a.example"))
	require.NoError(t, err)
	assert.Equal(t, "Work", store.presets[0].Name, "names are stored trimmed")

	_, err = c.Add(preset("   ", "t2", "https://b.example"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidPreset))

	_, err = c.Add(preset("Work", "t3", "https://c.example"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.True(t, errors.Is(err, domain.ErrDuplicatePreset))

	assert.Len(t, store.presets, 1)
	assert.Equal(t, []domain.EventKind{domain.EventPresetsSaved}, rec.kinds())
}

func TestPresetCatalog_UpdateRenamesUnlessColliding(t *testing.T) {
	store := &memPresets{presets: []domain.Preset{
		preset("A", "1", "https://a.example"),
		preset("B", "2", "https://b.example"),
	}}
	c := NewPresetCatalog(store)

	_, err := c.Update("A", preset("B", "9", "https://a.example"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConflict))

	got, err := c.Update("A", preset("A2", "9", "https://a.example"))
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, "A2", store.presets[0].Name, "update keeps position")
	assert.Equal(t, "9", store.presets[0].AuthToken)

	// Same name, new values.
	_, err = c.Update("B", preset("B", "3", "https://b.example"))
	require.NoError(t, err)

	_, err = c.Update("missing", preset("X", "1", "https://x.example"))
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestPresetCatalog_DeleteRemovesFromPersistedCollection(t *testing.T) {
	store := &memPresets{presets: []domain.Preset{
		preset("A", "1", "https://a.example"),
		preset("B", "2", "https://b.example"),
		preset("C", "3", "https://c.example"),
	}}
	c := NewPresetCatalog(store)

	require.NoError(t, c.Delete("B"))
	names := []string{store.presets[0].Name, store.presets[1].Name}
	assert.Equal(t, []string{"A", "C"}, names)

	err := c.Delete("B")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestPresetCatalog_ReplaceAllValidates(t *testing.T) {
	store := &memPresets{}
	c := NewPresetCatalog(store)

	err := c.ReplaceAll([]domain.Preset{
		preset("A", "1", "https://a.example"),
		preset(" A ", "2", "https://b.example"),
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.Equal(t, 0, store.saves)

	bad := preset("B", "1", "https://b.example")
	bad.MaxOutputTokens = "lots"
	err = c.ReplaceAll([]domain.Preset{bad})
	assert.True(t, domain.IsKind(err, domain.KindInvalidPreset))

	require.NoError(t, c.ReplaceAll(nil))
	assert.Equal(t, 1, store.saves)
	assert.Empty(t, store.presets)
}

func TestPresetCatalog_ImportMergeKeepsExisting(t *testing.T) {
	store := &memPresets{presets: []domain.Preset{preset("A", "old", "https://a.example")}}
	c := NewPresetCatalog(store)

	rep, err := c.Import([]domain.Preset{
		preset("A", "new", "https://a.example"),
		preset("B", "b", "https://b.example"),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, rep.Added)
	assert.Equal(t, []string{"A"}, rep.Skipped)
	assert.Equal(t, "old", store.presets[0].AuthToken)
	assert.Len(t, store.presets, 2)
}

func TestPresetCatalog_ImportOverwrite(t *testing.T) {
	store := &memPresets{presets: []domain.Preset{preset("A", "old", "https://a.example")}}
	c := NewPresetCatalog(store)

	rep, err := c.Import([]domain.Preset{preset("A", "new", "https://a.example")}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, rep.Updated)
	assert.Equal(t, "new", store.presets[0].AuthToken)
}

func TestPresetCatalog_ImportNothingNewDoesNotSave(t *testing.T) {
	store := &memPresets{presets: []domain.Preset{preset("A", "1", "https://a.example")}}
	c := NewPresetCatalog(store)

	_, err := c.Import([]domain.Preset{preset("A", "1", "https://a.example")}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, store.saves)
}

func TestPresetCatalog_Get(t *testing.T) {
	store := &memPresets{presets: []domain.Preset{preset("A", "1", "https://a.example")}}
	c := NewPresetCatalog(store)

	p, err := c.Get("A")
	require.NoError(t, err)
	assert.Equal(t, "1", p.AuthToken)

	_, err = c.Get("a")
	assert.True(t, domain.IsKind(err, domain.KindNotFound), "lookup is case-sensitive")
}

func TestPresetCatalog_SaveErrorIsReturned(t *testing.T) {
	store := &memPresets{saveErr: errors.New("read-only")}
	rec := &recorder{}
	c := NewPresetCatalog(store, WithEvents(rec))

	_, err := c.Add(preset("A", "1", "https://a.example"))
	require.Error(t, err)
	assert.Empty(t, rec.events)
}
