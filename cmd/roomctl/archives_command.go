package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomorganizer/internal/domain"
)

func newArchivesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archives <account_id>",
		Short: "List recent broadcast archives for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}
			listing, err := app.Archives.ListArchives(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				return writeJSON(out, listing)
			}
			fmt.Fprintln(out, renderArchives(listing))
			return nil
		},
	}
}

func renderArchives(l *domain.ArchiveListing) string {
	title := fmt.Sprintf("%s (%s)", l.RoomName, l.RoomURLKey)
	if len(l.Archives) == 0 {
		return title + "\nNo archives in the last month."
	}
	rows := make([][]string, 0, len(l.Archives))
	for _, a := range l.Archives {
		rows = append(rows, []string{a.TimePeriod, a.Filename, a.DownloadURL})
	}
	return title + "\n" + renderTable([]string{"Period", "File", "URL"}, rows, nil)
}
