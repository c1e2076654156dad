package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomorganizer/internal/domain"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <room_id>",
		Short: "Resolve the organizer of a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.ValidateRoomID(args[0]); err != nil {
				return fmt.Errorf("room id %q: must be a number", args[0])
			}
			app, err := ctx.ensureApp(cmd.Context())
			if err != nil {
				return err
			}
			lookup, err := app.Organizers.LookupOrganizer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ctx.jsonOutput() {
				return writeJSON(out, lookup)
			}
			fmt.Fprintln(out, renderLookup(lookup))
			return nil
		},
	}
}

func renderLookup(l *domain.OrganizerLookup) string {
	organizer := l.OrganizerName
	if organizer == "" {
		organizer = "-"
	}
	return renderTable(
		[]string{"Room", "Name", "Verdict", "Organizer"},
		[][]string{{l.RoomID, l.RoomName, string(l.Verdict), organizer}},
		[]columnAlignment{alignRight},
	) + "\n" + l.Message
}
