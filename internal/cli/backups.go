package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func backupsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "backups",
		Short: "List and restore settings.json snapshots",
	}

	c.AddCommand(backupsListCmd(opts), backupsRestoreCmd(opts))
	return c
}

type backupView struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

func backupsListCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := opts.load()
			if err != nil {
				return err
			}
			refs, err := a.restore.List()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == formatJSON {
				views := make([]backupView, 0, len(refs))
				for _, r := range refs {
					views = append(views, backupView{ID: r.ID, Path: r.Path, CreatedAt: r.CreatedAt.UTC()})
				}
				return writeJSON(w, views)
			}
			if !a.cfg.Backups.Enabled {
				fmt.Fprintln(w, "(backups are disabled)")
				return nil
			}
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no backups yet)")
				return nil
			}
			for _, r := range refs {
				fmt.Fprintf(w, "- %s  %s\n", r.ID, r.CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func backupsRestoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore ID",
		Short: "Replace settings.json with a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			undo, err := a.restore.Execute(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Restored %s into %s\n", args[0], a.settings.Path())
			if undo != nil {
				fmt.Fprintf(w, "Previous settings saved as %s\n", undo.ID)
			}
			return nil
		},
	}
}
