package domain

import "context"

// EventRosterEntry is one room taking part in an event. OrganizerID is already
// canonical; empty means the platform assigned no organizer.
type EventRosterEntry struct {
	RoomID      string
	OrganizerID string
}

// RosterFetcher materializes the full participant roster of one event.
// Implementations are best-effort: a failed page ends the fetch and the entries
// gathered so far are returned.
type RosterFetcher interface {
	FetchRoster(ctx context.Context, eventID string) []EventRosterEntry
}

// FindRosterEntry returns the first entry for roomID in scan order.
func FindRosterEntry(roster []EventRosterEntry, roomID string) (EventRosterEntry, bool) {
	want := CanonicalRoomID(roomID)
	for _, e := range roster {
		if e.RoomID == want {
			return e, true
		}
	}
	return EventRosterEntry{}, false
}
