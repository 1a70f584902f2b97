package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func menuCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "menu",
		Short: "Quick-switch menu (the tray menu content)",
	}

	c.AddCommand(menuShowCmd(opts), menuPickCmd(opts))
	return c
}

func menuShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the quick-switch menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}
			m, err := a.menu.Execute()
			if err != nil {
				return err
			}
			return printMenu(cmd.OutOrStdout(), m, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func menuPickCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick ITEM",
		Short: "Apply a preset by menu item id (preset_<name>) or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			res, m, err := a.switcher.Execute(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Switched to %q\n\n", res.Preset.Name)
			return printMenu(w, m, formatPretty)
		},
	}
}
