package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRoomID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"507948", "507948"},
		{" 507948 ", "507948"},
		{"507948.0", "507948"},
		{"00123", "123"},
		{"room-key", "room-key"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalRoomID(tt.in))
		})
	}
}

func TestCanonicalOrganizerID(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"plain integer", "7", "7", true},
		{"float form", "7.0", "7", true},
		{"padded", "  7  ", "7", true},
		{"zero", "0", "", false},
		{"zero float", "0.0", "", false},
		{"dash", "-", "", false},
		{"blank", "", "", false},
		{"null literal", "null", "", false},
		{"fractional", "7.5", "", false},
		{"text", "acme", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalOrganizerID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalEventID(t *testing.T) {
	assert.Equal(t, "9001", CanonicalEventID("9001.0"))
	assert.Equal(t, "", CanonicalEventID("0"))
	assert.Equal(t, "", CanonicalEventID(" "))
}

func TestValidateRoomID(t *testing.T) {
	assert.NoError(t, ValidateRoomID("507948"))
	assert.ErrorIs(t, ValidateRoomID(""), ErrInvalidRoomID)
	assert.ErrorIs(t, ValidateRoomID("50794a"), ErrInvalidRoomID)
	assert.ErrorIs(t, ValidateRoomID("-1"), ErrInvalidRoomID)
	assert.ErrorIs(t, ValidateRoomID("１２３"), ErrInvalidRoomID)
}

func TestFindRosterEntry_FirstMatchWins(t *testing.T) {
	roster := []EventRosterEntry{
		{RoomID: "1", OrganizerID: "3"},
		{RoomID: "507948", OrganizerID: "42"},
		{RoomID: "507948", OrganizerID: "99"},
	}
	e, ok := FindRosterEntry(roster, " 507948 ")
	assert.True(t, ok)
	assert.Equal(t, "42", e.OrganizerID)

	_, ok = FindRosterEntry(roster, "2")
	assert.False(t, ok)
}

func TestVerdict_Describe(t *testing.T) {
	assert.Equal(t, "Room A is a free broadcaster.", FreeVerdict().Describe("Room A"))
	assert.Equal(t, "The organizer of Room A is probably Acme Talent.", IdentifiedVerdict("Acme Talent").Describe("Room A"))
	assert.Equal(t, "The organizer of Room A is probably MKsoul.", ManagedRosterVerdict().Describe("Room A"))
	assert.Contains(t, UnknownVerdict().Describe(""), "This room")
	assert.Equal(t, "", UnknownVerdict().DisplayOrganizer())
}
