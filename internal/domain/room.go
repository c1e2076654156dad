package domain

import "context"

// RoomProfile is a snapshot of a room's public profile. It is fetched fresh for
// every lookup and never mutated.
// swagger:model RoomProfile
type RoomProfile struct {
	RoomID     string `json:"room_id"`
	RoomName   string `json:"room_name"`
	RoomURLKey string `json:"room_url_key"`
	IsOfficial bool   `json:"is_official"`
	// CurrentEventID is empty when the room is not entered in an event.
	CurrentEventID string `json:"current_event_id,omitempty"`
	FollowerCount  int    `json:"follower_count"`
	RoomLevel      int    `json:"room_level"`
}

// ProfileFetcher fetches a room profile from the platform (or a test double).
// Every failure is reported as an error wrapping ErrProfileUnavailable.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, roomID string) (*RoomProfile, error)
}
