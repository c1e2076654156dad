package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type tableCount struct {
	Table   string `json:"table"`
	Entries int    `json:"entries"`
}

func newTablesCommand(ctx *commandContext) *cobra.Command {
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Inspect the reference tables",
	}

	tablesCmd.AddCommand(&cobra.Command{
		Use:   "warm",
		Short: "Fetch every reference table into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}
			c := cmd.Context()
			if err := app.Tables.Warm(c); err != nil {
				return fmt.Errorf("warm tables: %w", err)
			}
			counts := []tableCount{
				{"room_roster", len(app.Tables.LoadRoomRoster(c))},
				{"event_rooms", len(app.Tables.LoadEventRoomMap(c))},
				{"organizers", len(app.Tables.LoadOrganizerDirectory(c))},
				{"accounts", len(app.Tables.LoadAccountRoomMap(c))},
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), counts)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCounts(counts))
			return nil
		},
	})

	return tablesCmd
}

func renderCounts(counts []tableCount) string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Table, strconv.Itoa(c.Entries)})
	}
	return renderTable([]string{"Table", "Entries"}, rows, []columnAlignment{alignLeft, alignRight})
}
