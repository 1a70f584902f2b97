package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/claudeswitch/internal/buildinfo"
	"github.com/aalvaropc/claudeswitch/internal/ui/tui"
)

func Execute() {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	err := cmd.Execute()
	opts.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "claudeswitch",
		Short:        "claudeswitch: switch API presets for the Claude CLI",
		Long:         "Manage named API presets and apply them to the Claude CLI settings.json.\nRun without a subcommand to open the interactive preset manager.",
		SilenceUsage: true,
		Version:      buildinfo.String(),
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Catalog:      a.catalog,
				Apply:        a.apply,
				Current:      a.current,
				Status:       a.status,
				Menu:         a.menu,
				Switch:       a.switcher,
				Events:       a.events,
				Defaults:     a.cfg.Defaults,
				Masking:      a.cfg.Masking.Enabled,
				SettingsPath: a.settings.Path(),
				Logger:       a.log,
				Debug:        opts.debug,
			})
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.debug, "debug", false, "enable verbose logging to <home>/logs/claudeswitch.log")
	pf.StringVar(&opts.home, "home", "", "claudeswitch home (default $CLAUDESWITCH_HOME or ~/.claudeswitch)")
	pf.BoolVar(&opts.project, "project", false, "target the nearest project's .claude/settings.json instead of the user settings")

	cmd.AddCommand(
		presetsCmd(opts),
		statusCmd(opts),
		settingsCmd(opts),
		menuCmd(opts),
		backupsCmd(opts),
		initCmd(opts),
		versionCmd(),
	)
	return cmd
}
