package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"roomorganizer/internal/domain"
)

// pgUndefinedTable is the SQLSTATE for a missing relation.
const pgUndefinedTable = "42P01"

const lookupLogSchema = `CREATE TABLE IF NOT EXISTS organizer_lookups (
	id BIGSERIAL PRIMARY KEY,
	room_id TEXT NOT NULL,
	room_name TEXT NOT NULL DEFAULT '',
	verdict TEXT NOT NULL,
	organizer_name TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type lookupLogRepository struct {
	DB *sql.DB
}

// NewLookupLogRepository returns a domain.LookupLogRepository implemented with Postgres.
func NewLookupLogRepository(db *sql.DB) domain.LookupLogRepository {
	return &lookupLogRepository{DB: db}
}

// EnsureLookupLogSchema creates the organizer_lookups table if it does not exist.
func EnsureLookupLogSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, lookupLogSchema)
	return err
}

func (r *lookupLogRepository) Create(ctx context.Context, rec *domain.LookupRecord) error {
	query := `
		INSERT INTO organizer_lookups (room_id, room_name, verdict, organizer_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		rec.RoomID, rec.RoomName, string(rec.Verdict), rec.OrganizerName, rec.CreatedAt,
	).Scan(&rec.ID)
}

// ListRecent returns one page of lookups, newest first, and the total count.
// A missing table reads as an empty log.
func (r *lookupLogRepository) ListRecent(ctx context.Context, params domain.PaginationParams) ([]*domain.LookupRecord, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizer_lookups`).Scan(&total); err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == pgUndefinedTable {
			return []*domain.LookupRecord{}, 0, nil
		}
		return nil, 0, err
	}

	query := `
		SELECT id, room_id, room_name, verdict, organizer_name, created_at
		FROM organizer_lookups
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recs []*domain.LookupRecord
	for rows.Next() {
		rec := &domain.LookupRecord{}
		var verdict string
		if err := rows.Scan(&rec.ID, &rec.RoomID, &rec.RoomName, &verdict, &rec.OrganizerName, &rec.CreatedAt); err != nil {
			return nil, 0, err
		}
		rec.Verdict = domain.VerdictKind(verdict)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if recs == nil {
		recs = []*domain.LookupRecord{}
	}
	return recs, total, nil
}
