package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func settingsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and edit the Claude settings.json",
	}

	c.AddCommand(
		settingsShowCmd(opts),
		settingsGetCmd(opts),
		settingsPathCmd(opts),
		settingsSetEnvCmd(opts),
		settingsUnsetEnvCmd(opts),
	)
	return c
}

func settingsShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show env, permissions and survey state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}
			s, err := a.settings.Read()
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), s, maskFunc(a, reveal), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	cmd.Flags().BoolVar(&reveal, "show-secrets", false, "Print the auth token unmasked")
	return cmd
}

func settingsGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get JSONPATH",
		Short: "Evaluate a JSONPath against settings.json (e.g. env.ANTHROPIC_BASE_URL)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			v, err := a.settings.Query(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if s, ok := v.(string); ok {
				fmt.Fprintln(w, s)
				return nil
			}
			return writeJSON(w, v)
		},
	}
}

func settingsPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings.json path in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.settings.Path())
			return nil
		},
	}
}

func settingsSetEnvCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-env KEY VALUE",
		Short: "Set one entry of the env block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			if err := a.edit.SetEnv(args[0], args[1]); err != nil {
				return err
			}
			shown := args[1]
			if args[0] == domain.EnvAuthToken {
				shown = a.mask(shown, false)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], shown)
			return nil
		},
	}
}

func settingsUnsetEnvCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unset-env KEY",
		Short: "Remove one entry of the env block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			if err := a.edit.UnsetEnv(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed\n", args[0])
			return nil
		},
	}
}
