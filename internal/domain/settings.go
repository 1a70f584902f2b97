package domain

// Settings is the AI client's settings document.
//
// Only the blocks claudeswitch understands are typed. Every other top-level
// key is carried in Extra so a rewrite never drops client configuration.
type Settings struct {
	Env         Vars
	Permissions map[string][]string

	// PermissionOptions holds non-list permission entries (e.g. defaultMode).
	PermissionOptions map[string]any

	// FeedbackSurveyState is nil when the key is absent from the file.
	FeedbackSurveyState map[string]int64

	Extra map[string]any
}

// NewSettings returns an empty, ready-to-write settings document.
func NewSettings() Settings {
	return Settings{
		Env:               Vars{},
		Permissions:       map[string][]string{},
		PermissionOptions: map[string]any{},
		Extra:             map[string]any{},
	}
}

// Clone returns a deep copy of the typed blocks. Extra and PermissionOptions
// values are copied shallowly; they are opaque to claudeswitch and never mutated.
func (s Settings) Clone() Settings {
	out := Settings{
		Env:               Merge(s.Env, nil),
		Permissions:       make(map[string][]string, len(s.Permissions)),
		PermissionOptions: make(map[string]any, len(s.PermissionOptions)),
		Extra:             make(map[string]any, len(s.Extra)),
	}
	for k, v := range s.Permissions {
		cp := make([]string, len(v))
		copy(cp, v)
		out.Permissions[k] = cp
	}
	if s.FeedbackSurveyState != nil {
		out.FeedbackSurveyState = make(map[string]int64, len(s.FeedbackSurveyState))
		for k, v := range s.FeedbackSurveyState {
			out.FeedbackSurveyState[k] = v
		}
	}
	for k, v := range s.PermissionOptions {
		out.PermissionOptions[k] = v
	}
	for k, v := range s.Extra {
		out.Extra[k] = v
	}
	return out
}

// ApplyPreset returns a copy of s with the preset's env entries written.
// Unrelated env entries and all other blocks are preserved.
func ApplyPreset(s Settings, p Preset) Settings {
	out := s.Clone()
	for k, v := range p.EnvVars() {
		out.Env[k] = v
	}
	return out
}
