package settingsfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const (
	keyEnv         = "env"
	keyPermissions = "permissions"
	keySurvey      = "feedbackSurveyState"
)

// Decode parses a settings document. Unknown top-level keys are kept as raw
// JSON in Settings.Extra so Encode can write them back unchanged.
func Decode(b []byte) (domain.Settings, error) {
	out := domain.NewSettings()

	if len(bytes.TrimSpace(b)) == 0 {
		return out, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return domain.Settings{}, fmt.Errorf("settings must be a JSON object: %w", err)
	}

	for key, raw := range top {
		switch key {
		case keyEnv:
			env, err := decodeEnv(raw)
			if err != nil {
				return domain.Settings{}, err
			}
			out.Env = env

		case keyPermissions:
			lists, opts, err := decodePermissions(raw)
			if err != nil {
				return domain.Settings{}, err
			}
			out.Permissions = lists
			out.PermissionOptions = opts

		case keySurvey:
			if isNull(raw) {
				continue
			}
			var st map[string]int64
			if err := json.Unmarshal(raw, &st); err != nil {
				return domain.Settings{}, fmt.Errorf("field %s: %w", keySurvey, err)
			}
			out.FeedbackSurveyState = st

		default:
			out.Extra[key] = raw
		}
	}

	return out, nil
}

// Encode renders settings as indented JSON with a trailing newline.
func Encode(s domain.Settings) ([]byte, error) {
	doc := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		doc[k] = v
	}

	env := s.Env
	if env == nil {
		env = domain.Vars{}
	}
	doc[keyEnv] = map[string]string(env)

	perms := make(map[string]any, len(s.Permissions)+len(s.PermissionOptions))
	for k, v := range s.PermissionOptions {
		perms[k] = v
	}
	for k, v := range s.Permissions {
		if v == nil {
			v = []string{}
		}
		perms[k] = v
	}
	doc[keyPermissions] = perms

	if s.FeedbackSurveyState != nil {
		doc[keySurvey] = s.FeedbackSurveyState
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func decodeEnv(raw json.RawMessage) (domain.Vars, error) {
	if isNull(raw) {
		return domain.Vars{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("field %s: %w", keyEnv, err)
	}

	out := make(domain.Vars, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case string:
			out[k] = t
		case json.Number:
			out[k] = t.String()
		case bool:
			out[k] = strconv.FormatBool(t)
		case nil:
			out[k] = ""
		default:
			return nil, fmt.Errorf("field %s.%s: expected a scalar, got %T", keyEnv, k, v)
		}
	}
	return out, nil
}

func decodePermissions(raw json.RawMessage) (map[string][]string, map[string]any, error) {
	lists := map[string][]string{}
	opts := map[string]any{}
	if isNull(raw) {
		return lists, opts, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("field %s: %w", keyPermissions, err)
	}

	for k, v := range m {
		var l []string
		if err := json.Unmarshal(v, &l); err == nil && l != nil {
			lists[k] = l
			continue
		}
		opts[k] = v
	}
	return lists, opts, nil
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
