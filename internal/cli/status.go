package cli

import (
	"github.com/spf13/cobra"
)

func statusCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the Claude settings carry usable API credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), a.settings.Path(), a.status.Execute(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}
