package domain

import "context"

// RoomSet is a set of canonical room IDs.
type RoomSet map[string]struct{}

// Contains reports whether roomID (canonicalized) is in the set.
func (s RoomSet) Contains(roomID string) bool {
	_, ok := s[CanonicalRoomID(roomID)]
	return ok
}

// ReferenceTables loads the externally maintained lookup tables. Loads never
// fail: an unavailable or unparseable table is returned empty.
type ReferenceTables interface {
	// LoadRoomRoster returns the rooms under the managed roster.
	LoadRoomRoster(ctx context.Context) RoomSet
	// LoadEventRoomMap maps room_id to a fallback event_id.
	LoadEventRoomMap(ctx context.Context) map[string]string
	// LoadOrganizerDirectory maps canonical organizer_id to display name.
	LoadOrganizerDirectory(ctx context.Context) map[string]string
	// LoadAccountRoomMap maps account_id to room_id.
	LoadAccountRoomMap(ctx context.Context) map[string]string
}
