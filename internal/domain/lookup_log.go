package domain

import (
	"context"
	"time"
)

// LookupRecord is a stored organizer lookup.
// swagger:model LookupRecord
type LookupRecord struct {
	ID            string      `json:"id"`
	RoomID        string      `json:"room_id"`
	RoomName      string      `json:"room_name"`
	Verdict       VerdictKind `json:"verdict"`
	OrganizerName string      `json:"organizer_name,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// NewLookupRecord builds a record for a finished lookup. ID is set by the repository.
func NewLookupRecord(l *OrganizerLookup, createdAt time.Time) *LookupRecord {
	return &LookupRecord{
		RoomID:        l.RoomID,
		RoomName:      l.RoomName,
		Verdict:       l.Verdict,
		OrganizerName: l.OrganizerName,
		CreatedAt:     createdAt,
	}
}

// LookupLogRepository defines the interface for lookup history storage.
type LookupLogRepository interface {
	Create(ctx context.Context, rec *LookupRecord) error
	ListRecent(ctx context.Context, params PaginationParams) ([]*LookupRecord, int, error)
}
