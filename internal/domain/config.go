package domain

import "time"

// Config represents claudeswitch configuration loaded from config.yaml.
type Config struct {
	Masking  MaskingConfig
	Backups  BackupsConfig
	Menu     MenuConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
	Probe    ProbeConfig
}

type MaskingConfig struct {
	Enabled bool
}

type BackupsConfig struct {
	Enabled bool
	Keep    int
}

type MenuConfig struct {
	MaxPresets int
}

// DefaultsConfig prefills new presets.
type DefaultsConfig struct {
	BaseURL                    string
	MaxOutputTokens            string
	DisableNonessentialTraffic string
}

// PathsConfig locates the AI client's files. Relative file names are
// resolved against ClientDir.
type PathsConfig struct {
	ClientDir    string
	SettingsFile string
	PresetsFile  string
	BackupsDir   string
	LogsDir      string
}

type ProbeConfig struct {
	Timeout time.Duration
}

// DefaultConfig provides sane defaults if config.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Masking: MaskingConfig{Enabled: true},
		Backups: BackupsConfig{Enabled: true, Keep: 20},
		Menu:    MenuConfig{MaxPresets: DefaultMenuMaxPresets},
		Defaults: DefaultsConfig{
			BaseURL:                    DefaultBaseURL,
			MaxOutputTokens:            DefaultMaxOutputTokens,
			DisableNonessentialTraffic: "1",
		},
		Paths: PathsConfig{
			ClientDir:    "~/.claude",
			SettingsFile: "settings.json",
			PresetsFile:  "api-presets.json",
			BackupsDir:   "backups",
			LogsDir:      "logs",
		},
		Probe: ProbeConfig{Timeout: 10 * time.Second},
	}
}
