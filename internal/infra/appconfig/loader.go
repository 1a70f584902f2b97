package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const (
	ConfigFile  = "config.yaml"
	defaultHome = "~/.claudeswitch"
)

// Load builds the effective configuration: defaults, then <home>/config.yaml
// (optional), then CLAUDESWITCH_* environment variables. Paths in the result
// are absolute.
func Load(home string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(home, ConfigFile)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyYAML(&cfg, b); err != nil {
			return cfg, &domain.OpError{
				Op:   "appconfig.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return cfg, &domain.OpError{
			Op:   "appconfig.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "appconfig.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if err := resolvePaths(&cfg, home); err != nil {
		return cfg, &domain.OpError{
			Op:   "appconfig.paths",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return cfg, nil
}

// ResolveHome picks the claudeswitch home: flag, then CLAUDESWITCH_HOME,
// then ~/.claudeswitch.
func ResolveHome(flag string) (string, error) {
	h := strings.TrimSpace(flag)
	if h == "" {
		h = strings.TrimSpace(os.Getenv("CLAUDESWITCH_HOME"))
	}
	if h == "" {
		h = defaultHome
	}
	h, err := ExpandHome(h)
	if err != nil {
		return "", err
	}
	return filepath.Abs(h)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

func applyYAML(cfg *domain.Config, b []byte) error {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return err
	}
	c := y.Claudeswitch

	// Apply parsed values on top of defaults.
	if c.Paths.ClientDir != "" {
		cfg.Paths.ClientDir = c.Paths.ClientDir
	}
	if c.Paths.SettingsFile != "" {
		cfg.Paths.SettingsFile = c.Paths.SettingsFile
	}
	if c.Paths.PresetsFile != "" {
		cfg.Paths.PresetsFile = c.Paths.PresetsFile
	}
	if c.Paths.BackupsDir != "" {
		cfg.Paths.BackupsDir = c.Paths.BackupsDir
	}
	if c.Paths.LogsDir != "" {
		cfg.Paths.LogsDir = c.Paths.LogsDir
	}
	if c.Masking.Enabled != nil {
		cfg.Masking.Enabled = *c.Masking.Enabled
	}
	if c.Backups.Enabled != nil {
		cfg.Backups.Enabled = *c.Backups.Enabled
	}
	if c.Backups.Keep != nil {
		if *c.Backups.Keep < 0 {
			return fmt.Errorf("field claudeswitch.backups.keep: must be >= 0")
		}
		cfg.Backups.Keep = *c.Backups.Keep
	}
	if c.Menu.MaxPresets != nil {
		if *c.Menu.MaxPresets <= 0 {
			return fmt.Errorf("field claudeswitch.menu.max_presets: must be > 0")
		}
		cfg.Menu.MaxPresets = *c.Menu.MaxPresets
	}
	if c.Defaults.BaseURL != "" {
		cfg.Defaults.BaseURL = c.Defaults.BaseURL
	}
	if c.Defaults.MaxOutputTokens != "" {
		cfg.Defaults.MaxOutputTokens = c.Defaults.MaxOutputTokens
	}
	if c.Defaults.DisableNonessentialTraffic != "" {
		cfg.Defaults.DisableNonessentialTraffic = c.Defaults.DisableNonessentialTraffic
	}
	if c.Probe.Timeout != "" {
		d, err := time.ParseDuration(strings.TrimSpace(c.Probe.Timeout))
		if err != nil {
			return fmt.Errorf("field claudeswitch.probe.timeout: %w", err)
		}
		cfg.Probe.Timeout = d
	}
	return nil
}

// DebugFromEnv reports CLAUDESWITCH_DEBUG.
func DebugFromEnv() bool {
	var e envOverrides
	if err := parseEnv(&e); err != nil {
		return false
	}
	return e.Debug
}

func parseEnv(e *envOverrides) error {
	if err := env.ParseWithOptions(e, env.Options{Prefix: "CLAUDESWITCH_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func applyEnv(cfg *domain.Config) error {
	var e envOverrides
	if err := parseEnv(&e); err != nil {
		return err
	}

	if e.ClientDir != "" {
		cfg.Paths.ClientDir = e.ClientDir
	}
	if e.SettingsFile != "" {
		cfg.Paths.SettingsFile = e.SettingsFile
	}
	if e.PresetsFile != "" {
		cfg.Paths.PresetsFile = e.PresetsFile
	}
	if e.Masking != nil {
		cfg.Masking.Enabled = *e.Masking
	}
	if e.Backups != nil {
		cfg.Backups.Enabled = *e.Backups
	}
	if e.ProbeTimeout != nil {
		cfg.Probe.Timeout = *e.ProbeTimeout
	}
	return nil
}

func resolvePaths(cfg *domain.Config, home string) error {
	clientDir, err := ExpandHome(cfg.Paths.ClientDir)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(clientDir) {
		clientDir = filepath.Join(home, clientDir)
	}
	cfg.Paths.ClientDir = filepath.Clean(clientDir)

	within := func(base, p string) (string, error) {
		p, err := ExpandHome(p)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(p) {
			return filepath.Clean(p), nil
		}
		return filepath.Join(base, p), nil
	}

	if cfg.Paths.SettingsFile, err = within(cfg.Paths.ClientDir, cfg.Paths.SettingsFile); err != nil {
		return err
	}
	if cfg.Paths.PresetsFile, err = within(cfg.Paths.ClientDir, cfg.Paths.PresetsFile); err != nil {
		return err
	}
	if cfg.Paths.BackupsDir, err = within(home, cfg.Paths.BackupsDir); err != nil {
		return err
	}
	if cfg.Paths.LogsDir, err = within(home, cfg.Paths.LogsDir); err != nil {
		return err
	}
	return nil
}
