package domain

import (
	"context"
	"fmt"
)

// VerdictKind is one of the four possible outcomes of organizer resolution.
type VerdictKind string

const (
	VerdictFree          VerdictKind = "free"
	VerdictManagedRoster VerdictKind = "managed_roster"
	VerdictIdentified    VerdictKind = "identified"
	VerdictUnknown       VerdictKind = "unknown"
)

// ManagedRosterName is the display name used for rooms on the managed roster.
const ManagedRosterName = "MKsoul"

// Verdict is the result of organizer resolution. OrganizerName is set only
// when Kind is VerdictIdentified.
// swagger:model Verdict
type Verdict struct {
	Kind          VerdictKind `json:"kind"`
	OrganizerName string      `json:"organizer_name,omitempty"`
}

func FreeVerdict() Verdict          { return Verdict{Kind: VerdictFree} }
func ManagedRosterVerdict() Verdict { return Verdict{Kind: VerdictManagedRoster} }
func UnknownVerdict() Verdict       { return Verdict{Kind: VerdictUnknown} }

// IdentifiedVerdict returns an identified verdict for the given organizer name.
func IdentifiedVerdict(name string) Verdict {
	return Verdict{Kind: VerdictIdentified, OrganizerName: name}
}

// DisplayOrganizer returns the organizer name to show, if any.
func (v Verdict) DisplayOrganizer() string {
	switch v.Kind {
	case VerdictIdentified:
		return v.OrganizerName
	case VerdictManagedRoster:
		return ManagedRosterName
	}
	return ""
}

// Describe renders the one-line verdict for roomName.
func (v Verdict) Describe(roomName string) string {
	if roomName == "" {
		roomName = "This room"
	}
	switch v.Kind {
	case VerdictFree:
		return fmt.Sprintf("%s is a free broadcaster.", roomName)
	case VerdictManagedRoster, VerdictIdentified:
		return fmt.Sprintf("The organizer of %s is probably %s.", roomName, v.DisplayOrganizer())
	}
	return fmt.Sprintf("Sorry, the organizer of %s could not be determined.", roomName)
}

// OrganizerResolver decides which organizer operates a room. It never fails
// because of an unavailable data source; those degrade to VerdictUnknown.
type OrganizerResolver interface {
	Resolve(ctx context.Context, roomID string, profile *RoomProfile) Verdict
}

// OrganizerLookup is the result of a full lookup: the profile and the verdict.
// swagger:model OrganizerLookup
type OrganizerLookup struct {
	RoomID        string      `json:"room_id"`
	RoomName      string      `json:"room_name"`
	Verdict       VerdictKind `json:"verdict"`
	OrganizerName string      `json:"organizer_name,omitempty"`
	Message       string      `json:"message"`
}

// NewOrganizerLookup combines a profile and its verdict into a lookup result.
func NewOrganizerLookup(profile *RoomProfile, v Verdict) *OrganizerLookup {
	return &OrganizerLookup{
		RoomID:        profile.RoomID,
		RoomName:      profile.RoomName,
		Verdict:       v.Kind,
		OrganizerName: v.DisplayOrganizer(),
		Message:       v.Describe(profile.RoomName),
	}
}

// OrganizerService runs a complete lookup for a room ID: profile fetch followed
// by resolution. Errors are ErrInvalidRoomID or ErrProfileUnavailable.
type OrganizerService interface {
	LookupOrganizer(ctx context.Context, roomID string) (*OrganizerLookup, error)
	ListRecentLookups(ctx context.Context, params PaginationParams) ([]*LookupRecord, int, error)
}
