package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/infra/presetio"
)

func presetsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"preset", "p"},
		Short:   "Manage API presets",
	}

	c.AddCommand(
		presetsListCmd(opts),
		presetsShowCmd(opts),
		presetsAddCmd(opts),
		presetsEditCmd(opts),
		presetsDeleteCmd(opts),
		presetsApplyCmd(opts),
		presetsCurrentCmd(opts),
		presetsExportCmd(opts),
		presetsImportCmd(opts),
		presetsProbeCmd(opts),
	)
	return c
}

func presetsListCmd(opts *rootOptions) *cobra.Command {
	var format string
	var reveal bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved presets (* marks the one currently applied)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			presets, err := a.catalog.List()
			if err != nil {
				return err
			}

			var current *domain.Preset
			if p, err := a.current.Execute(); err == nil {
				current = &p
			}

			return printPresets(cmd.OutOrStdout(), presets, current, maskFunc(a, reveal), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().BoolVar(&reveal, "show-secrets", false, "Print tokens unmasked")
	return cmd
}

func presetsShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			p, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}

			var current *domain.Preset
			if c, err := a.current.Execute(); err == nil {
				current = &c
			}
			v := viewPreset(p, current, maskFunc(a, reveal))
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			printPreset(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().BoolVar(&reveal, "show-secrets", false, "Print the token unmasked")
	return cmd
}

// presetFlags binds the editable preset fields to flags.
type presetFlags struct {
	name    string
	token   string
	baseURL string
	tokens  string
	traffic string
}

func (f *presetFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "API auth token (ANTHROPIC_AUTH_TOKEN)")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "API base URL (ANTHROPIC_BASE_URL)")
	cmd.Flags().StringVar(&f.tokens, "max-tokens", "", "Max output tokens (CLAUDE_CODE_MAX_OUTPUT_TOKENS)")
	cmd.Flags().StringVar(&f.traffic, "disable-traffic", "", "Disable nonessential traffic: 0|1 (CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC)")
}

// overlay copies the flags the user actually set onto p.
func (f *presetFlags) overlay(cmd *cobra.Command, p domain.Preset) domain.Preset {
	if cmd.Flags().Changed("name") {
		p.Name = f.name
	}
	if cmd.Flags().Changed("token") {
		p.AuthToken = f.token
	}
	if cmd.Flags().Changed("base-url") {
		p.BaseURL = f.baseURL
	}
	if cmd.Flags().Changed("max-tokens") {
		p.MaxOutputTokens = f.tokens
	}
	if cmd.Flags().Changed("disable-traffic") {
		p.DisableNonessentialTraffic = f.traffic
	}
	return p
}

func presetsAddCmd(opts *rootOptions) *cobra.Command {
	var f presetFlags
	var fromCurrent bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Save a new preset",
		Long:  "Save a new preset. Unset fields take the configured defaults, or the live settings with --from-current.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}

			p := domain.NewPreset(a.cfg.Defaults)
			if fromCurrent {
				if p, err = a.current.Execute(); err != nil {
					return err
				}
			}
			p = f.overlay(cmd, p)
			p.Name = args[0]

			saved, err := a.catalog.Add(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preset %q saved\n", saved.Name)
			return nil
		},
	}

	f.bind(cmd)
	cmd.Flags().BoolVar(&fromCurrent, "from-current", false, "Start from the live settings instead of the defaults")
	return cmd
}

func presetsEditCmd(opts *rootOptions) *cobra.Command {
	var f presetFlags

	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Change fields of a saved preset (only flags given are changed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}

			p, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			saved, err := a.catalog.Update(args[0], f.overlay(cmd, p))
			if err != nil {
				return err
			}

			if saved.Name != args[0] {
				fmt.Fprintf(cmd.OutOrStdout(), "Preset %q renamed to %q\n", args[0], saved.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preset %q updated\n", saved.Name)
			return nil
		},
	}

	f.bind(cmd)
	cmd.Flags().StringVar(&f.name, "name", "", "Rename the preset")
	return cmd
}

func presetsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			if err := a.catalog.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preset %q deleted\n", args[0])
			return nil
		},
	}
}

func presetsApplyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "apply NAME",
		Aliases: []string{"use"},
		Short:   "Write a preset into the Claude settings",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}

			p, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			res, err := a.apply.Execute(p, domain.OriginApp)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Applied %q to %s\n", res.Preset.Name, res.Path)
			if res.Created {
				fmt.Fprintln(w, "Settings file created")
			}
			if res.Backup != nil {
				fmt.Fprintf(w, "Backup: %s\n", res.Backup.ID)
			}
			return nil
		},
	}
}

func presetsCurrentCmd(opts *rootOptions) *cobra.Command {
	var format string
	var reveal bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the live settings as a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			p, err := a.current.Execute()
			if err != nil {
				return err
			}
			presets, err := a.catalog.List()
			if err != nil {
				return err
			}

			v := viewPreset(p, &p, maskFunc(a, reveal))
			v.Name = domain.ActivePresetName(presets, p)
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			printPreset(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().BoolVar(&reveal, "show-secrets", false, "Print the token unmasked")
	return cmd
}

func presetsExportCmd(opts *rootOptions) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export presets as json, yaml or toml (tokens included)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}
			presets, err := a.catalog.List()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return presetio.Encode(cmd.OutOrStdout(), presets, f)
			}

			file, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}
			if err := presetio.Encode(file, presets, f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d preset(s) to %s\n", len(presets), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "json|yaml|toml (default: from --output extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func exportFormat(flag, path string) (presetio.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return presetio.ParseFormat(flag)
	}
	if path != "" && path != "-" {
		if f, err := presetio.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	return presetio.FormatJSON, nil
}

func presetsImportCmd(opts *rootOptions) *cobra.Command {
	var format string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import presets from json, yaml or toml ('-' reads stdin)",
		Long:  "Import presets. Presets whose name already exists are skipped unless --overwrite is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := exportFormat(format, path)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return err
				}
				defer file.Close()
				r = file
			}

			incoming, err := presetio.Decode(r, f)
			if err != nil {
				return err
			}

			a, err := opts.load()
			if err != nil {
				return err
			}
			rep, err := a.catalog.Import(incoming, overwrite)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Added: %d, updated: %d, skipped: %d\n", len(rep.Added), len(rep.Updated), len(rep.Skipped))
			for _, n := range rep.Skipped {
				fmt.Fprintf(w, "  skipped %q (already exists)\n", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "json|yaml|toml (default: from file extension, else json)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace presets that already exist")
	return cmd
}

func presetsProbeCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "probe [NAME]",
		Short: "Check that a preset's endpoint answers (default: the live settings)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			res, err := a.probe.Execute(cmd.Context(), name)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(w, map[string]any{
					"url":         res.URL,
					"status_code": res.StatusCode,
					"latency_ms":  res.Latency.Milliseconds(),
					"reachable":   res.Reachable,
					"authorized":  res.Authorized,
					"message":     res.Message,
				})
			}

			fmt.Fprintf(w, "URL:     %s\n", res.URL)
			if res.Reachable {
				fmt.Fprintf(w, "Status:  %d\n", res.StatusCode)
			}
			fmt.Fprintf(w, "Latency: %s\n", res.Latency.Round(time.Millisecond))
			fmt.Fprintf(w, "Result:  %s\n", res.Message)
			if !res.Authorized {
				return fmt.Errorf("probe failed: %s", res.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func maskFunc(a *app, reveal bool) func(string) string {
	return func(s string) string { return a.mask(s, reveal) }
}
