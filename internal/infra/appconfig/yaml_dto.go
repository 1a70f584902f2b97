package appconfig

import "time"

type yamlConfig struct {
	Claudeswitch struct {
		Paths struct {
			ClientDir    string `yaml:"client_dir"`
			SettingsFile string `yaml:"settings_file"`
			PresetsFile  string `yaml:"presets_file"`
			BackupsDir   string `yaml:"backups_dir"`
			LogsDir      string `yaml:"logs_dir"`
		} `yaml:"paths"`

		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Backups struct {
			Enabled *bool `yaml:"enabled"`
			Keep    *int  `yaml:"keep"`
		} `yaml:"backups"`

		Menu struct {
			MaxPresets *int `yaml:"max_presets"`
		} `yaml:"menu"`

		Defaults struct {
			BaseURL                    string `yaml:"base_url"`
			MaxOutputTokens            string `yaml:"max_output_tokens"`
			DisableNonessentialTraffic string `yaml:"disable_nonessential_traffic"`
		} `yaml:"defaults"`

		Probe struct {
			Timeout string `yaml:"timeout"`
		} `yaml:"probe"`
	} `yaml:"claudeswitch"`
}

// envOverrides is read with the CLAUDESWITCH_ prefix.
type envOverrides struct {
	ClientDir    string         `env:"CLIENT_DIR"`
	SettingsFile string         `env:"SETTINGS_FILE"`
	PresetsFile  string         `env:"PRESETS_FILE"`
	Masking      *bool          `env:"MASKING"`
	Backups      *bool          `env:"BACKUPS"`
	ProbeTimeout *time.Duration `env:"PROBE_TIMEOUT"`
	Debug        bool           `env:"DEBUG"`
}
