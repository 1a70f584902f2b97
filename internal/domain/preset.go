package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Environment keys the AI client reads from the "env" block of its settings.
const (
	EnvAuthToken                  = "ANTHROPIC_AUTH_TOKEN"
	EnvBaseURL                    = "ANTHROPIC_BASE_URL"
	EnvMaxOutputTokens            = "CLAUDE_CODE_MAX_OUTPUT_TOKENS"
	EnvDisableNonessentialTraffic = "CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC"
)

const (
	DefaultBaseURL         = "https://api.anthropic.com"
	DefaultMaxOutputTokens = "32000"

	// CurrentPresetName names the preset synthesized from live settings.
	CurrentPresetName = "Current Config"
	// CopiedPresetName is the name given to a form prefilled from live settings.
	CopiedPresetName = "New Preset"
)

// Preset is a named bundle of connection settings for the AI client.
// Every field is kept as a string because that is how the client stores them.
type Preset struct {
	Name                       string
	AuthToken                  string
	BaseURL                    string
	MaxOutputTokens            string
	DisableNonessentialTraffic string
}

// NewPreset returns an unnamed preset prefilled with the given defaults.
func NewPreset(d DefaultsConfig) Preset {
	return Preset{
		BaseURL:                    d.BaseURL,
		MaxOutputTokens:            d.MaxOutputTokens,
		DisableNonessentialTraffic: d.DisableNonessentialTraffic,
	}
}

// Normalize returns a copy with surrounding whitespace removed from the name.
// Token and URL are kept verbatim: the client receives exactly what was typed.
func (p Preset) Normalize() Preset {
	p.Name = strings.TrimSpace(p.Name)
	return p
}

// Validate checks the preset in isolation (uniqueness is a collection concern).
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidPreset(p.Name, "name", "preset name is required")
	}

	if v := strings.TrimSpace(p.DisableNonessentialTraffic); v != "" && v != "0" && v != "1" {
		return invalidPreset(p.Name, "disable_nonessential_traffic", fmt.Sprintf("must be 0 or 1, got %q", v))
	}

	if v := strings.TrimSpace(p.MaxOutputTokens); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return invalidPreset(p.Name, "max_output_tokens", fmt.Sprintf("must be a positive integer, got %q", v))
		}
	}

	if v := strings.TrimSpace(p.BaseURL); v != "" {
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalidPreset(p.Name, "base_url", fmt.Sprintf("must be an absolute http(s) URL, got %q", v))
		}
	}

	return nil
}

// SameConnection reports whether two presets would produce identical client
// settings. Names are ignored.
func SameConnection(a, b Preset) bool {
	return a.AuthToken == b.AuthToken &&
		a.BaseURL == b.BaseURL &&
		a.MaxOutputTokens == b.MaxOutputTokens &&
		a.DisableNonessentialTraffic == b.DisableNonessentialTraffic
}

// EnvVars returns the env entries applying this preset writes.
func (p Preset) EnvVars() Vars {
	return Vars{
		EnvAuthToken:                  p.AuthToken,
		EnvBaseURL:                    p.BaseURL,
		EnvMaxOutputTokens:            p.MaxOutputTokens,
		EnvDisableNonessentialTraffic: p.DisableNonessentialTraffic,
	}
}

// PresetFromSettings synthesizes a preset from the live settings, falling
// back to client defaults for missing keys.
func PresetFromSettings(s Settings) Preset {
	pick := func(key, fallback string) string {
		if v, ok := Get(s.Env, key); ok {
			return v
		}
		return fallback
	}

	return Preset{
		Name:                       CurrentPresetName,
		AuthToken:                  pick(EnvAuthToken, ""),
		BaseURL:                    pick(EnvBaseURL, DefaultBaseURL),
		MaxOutputTokens:            pick(EnvMaxOutputTokens, DefaultMaxOutputTokens),
		DisableNonessentialTraffic: pick(EnvDisableNonessentialTraffic, "0"),
	}
}

// FindPreset returns the index of the preset with the exact given name.
func FindPreset(presets []Preset, name string) (int, bool) {
	for i, p := range presets {
		if p.Name == name {
			return i, true
		}
	}
	return -1, false
}

// ValidatePresets checks every preset and that names are unique.
func ValidatePresets(presets []Preset) error {
	seen := make(map[string]struct{}, len(presets))
	for i, p := range presets {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("presets[%d]: %w", i, err)
		}
		name := strings.TrimSpace(p.Name)
		if _, dup := seen[name]; dup {
			return &OpError{
				Op:   "preset.validate",
				Kind: KindConflict,
				Err:  fmt.Errorf("presets[%d] %q: %w", i, name, ErrDuplicatePreset),
			}
		}
		seen[name] = struct{}{}
	}
	return nil
}

func invalidPreset(name, field, msg string) error {
	op := "preset.validate"
	if strings.TrimSpace(name) != "" {
		op += "(" + strings.TrimSpace(name) + ")"
	}
	return &OpError{
		Op:   op,
		Kind: KindInvalidPreset,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidPreset),
	}
}
