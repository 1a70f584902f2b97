package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/infra/appconfig"
	"github.com/aalvaropc/claudeswitch/internal/infra/backupstore"
	"github.com/aalvaropc/claudeswitch/internal/infra/eventbus"
	"github.com/aalvaropc/claudeswitch/internal/infra/httpclient"
	"github.com/aalvaropc/claudeswitch/internal/infra/logger"
	"github.com/aalvaropc/claudeswitch/internal/infra/presetstore"
	"github.com/aalvaropc/claudeswitch/internal/infra/projectfinder"
	"github.com/aalvaropc/claudeswitch/internal/infra/settingsfile"
	"github.com/aalvaropc/claudeswitch/internal/usecase"
)

type rootOptions struct {
	home    string
	project bool
	debug   bool

	app     *app
	cleanup func() error
}

// app holds the adapters and use cases shared by every command.
type app struct {
	home        string
	cfg         domain.Config
	projectRoot string
	log         *slog.Logger

	settings *settingsfile.Store
	presets  *presetstore.JSONStore
	backups  usecase.BackupPolicy
	events   *eventbus.Broker

	catalog  *usecase.PresetCatalog
	apply    *usecase.ApplyPreset
	current  *usecase.CurrentPreset
	status   *usecase.CheckStatus
	menu     *usecase.RefreshMenu
	switcher *usecase.SwitchPreset
	restore  *usecase.RestoreBackup
	probe    *usecase.ProbePreset
	edit     *usecase.EditSettings
}

func (o *rootOptions) resolveHome() (string, error) {
	home, err := appconfig.ResolveHome(o.home)
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return home, nil
}

// load wires the application once per process.
func (o *rootOptions) load() (*app, error) {
	if o.app != nil {
		return o.app, nil
	}

	home, err := o.resolveHome()
	if err != nil {
		return nil, err
	}
	cfg, err := appconfig.Load(home)
	if err != nil {
		return nil, err
	}

	cleanup, _ := logger.Setup(logger.Config{
		Dir:   cfg.Paths.LogsDir,
		Debug: o.debug || appconfig.DebugFromEnv(),
	})
	o.cleanup = cleanup
	log := logger.With("cli")

	a := &app{home: home, cfg: cfg, log: log}

	settingsPath := cfg.Paths.SettingsFile
	if o.project {
		root, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		a.projectRoot = root
		settingsPath = projectfinder.SettingsPath(root)
	}

	a.settings = settingsfile.NewStore(settingsPath)
	a.presets = presetstore.NewJSONStore(cfg.Paths.PresetsFile)
	a.events = eventbus.NewBroker()
	if cfg.Backups.Enabled {
		dir := cfg.Paths.BackupsDir
		if a.projectRoot != "" {
			dir = backupstore.ScopeDir(dir, settingsPath)
		}
		a.backups = usecase.BackupPolicy{
			Store: backupstore.NewFileStore(dir),
			Keep:  cfg.Backups.Keep,
		}
	}

	common := []usecase.Option{usecase.WithEvents(a.events), usecase.WithLogger(log)}

	prober := httpclient.NewProber(
		httpclient.WithTimeout(cfg.Probe.Timeout),
		httpclient.WithClient(httpclient.New(httpclient.Config{
			Timeout:        cfg.Probe.Timeout,
			DialTimeout:    httpclient.DefaultConfig().DialTimeout,
			TLSHandshake:   httpclient.DefaultConfig().TLSHandshake,
			ResponseHeader: cfg.Probe.Timeout,
			UserAgent:      "claudeswitch",
		})),
	)

	a.catalog = usecase.NewPresetCatalog(a.presets, common...)
	a.apply = usecase.NewApplyPreset(a.settings, a.backups, common...)
	a.current = usecase.NewCurrentPreset(a.settings)
	a.status = usecase.NewCheckStatus(a.settings)
	a.menu = usecase.NewRefreshMenu(a.presets, a.settings, cfg.Menu.MaxPresets, common...)
	a.switcher = usecase.NewSwitchPreset(a.presets, a.apply, a.menu)
	a.restore = usecase.NewRestoreBackup(a.settings, a.backups, common...)
	a.probe = usecase.NewProbePreset(a.presets, a.settings, prober)
	a.edit = usecase.NewEditSettings(a.settings, a.backups, common...)

	log.Debug("app.loaded", "home", home, "settings", settingsPath, "presets", cfg.Paths.PresetsFile, "project", a.projectRoot)
	o.app = a
	return a, nil
}

func (o *rootOptions) close() {
	if o.cleanup != nil {
		_ = o.cleanup()
		o.cleanup = nil
	}
	o.app = nil
}

func findProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	finder := projectfinder.NewFinder()
	if home, err := os.UserHomeDir(); err == nil {
		finder.StopAt = home
	}

	root, err := finder.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("no project with a .claude directory found from %q: %w", wd, err)
	}
	return root, nil
}

func (a *app) mask(secret string, reveal bool) string {
	if reveal || !a.cfg.Masking.Enabled {
		return secret
	}
	return domain.MaskSecret(secret, 4, 4)
}
