package reftable

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"roomorganizer/internal/domain"
)

// Sources are the URLs of the externally hosted tables.
type Sources struct {
	RoomList       string
	EventLiverList string
	OrganizerList  string
}

const (
	tableRoomList       = "room_list"
	tableEventLiverList = "event_liver_list"
	tableOrganizerList  = "organizer_list"
)

// Tables loads the reference tables through a TTL cache. Every failure is
// logged and yields an empty table.
type Tables struct {
	fetcher Fetcher
	cache   Cache
	ttl     time.Duration
	sources Sources
	logger  *slog.Logger
}

var _ domain.ReferenceTables = (*Tables)(nil)

// NewTables returns a domain.ReferenceTables implementation.
// A nil cache disables caching.
func NewTables(fetcher Fetcher, cache Cache, ttl time.Duration, sources Sources, logger *slog.Logger) *Tables {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tables{fetcher: fetcher, cache: cache, ttl: ttl, sources: sources, logger: logger}
}

func (t *Tables) LoadRoomRoster(ctx context.Context) domain.RoomSet {
	set, err := loadParsed(ctx, t, tableRoomList, t.sources.RoomList, parseRoomRoster)
	if err != nil {
		return domain.RoomSet{}
	}
	return set
}

func (t *Tables) LoadEventRoomMap(ctx context.Context) map[string]string {
	m, err := loadParsed(ctx, t, tableEventLiverList, t.sources.EventLiverList, parseEventRoomMap)
	if err != nil {
		return map[string]string{}
	}
	return m
}

func (t *Tables) LoadOrganizerDirectory(ctx context.Context) map[string]string {
	m, err := loadParsed(ctx, t, tableOrganizerList, t.sources.OrganizerList, parseOrganizerDirectory)
	if err != nil {
		return map[string]string{}
	}
	return m
}

func (t *Tables) LoadAccountRoomMap(ctx context.Context) map[string]string {
	m, err := loadParsed(ctx, t, tableRoomList, t.sources.RoomList, parseAccountRoomMap)
	if err != nil {
		return map[string]string{}
	}
	return m
}

// Warm fetches all tables concurrently so that later lookups hit the cache.
// It returns the first failure; a failed table does not cancel the others,
// which are still cached.
func (t *Tables) Warm(ctx context.Context) error {
	var g errgroup.Group
	for name, url := range map[string]string{
		tableRoomList:       t.sources.RoomList,
		tableEventLiverList: t.sources.EventLiverList,
		tableOrganizerList:  t.sources.OrganizerList,
	} {
		g.Go(func() error {
			_, err := t.text(ctx, name, url)
			return err
		})
	}
	return g.Wait()
}

func loadParsed[T any](ctx context.Context, t *Tables, name, url string, parse func(string) (T, error)) (T, error) {
	var zero T
	text, err := t.text(ctx, name, url)
	if err != nil {
		return zero, err
	}
	v, err := parse(text)
	if err != nil {
		t.logger.WarnContext(ctx, "reference table unparseable", "table", name, "err", err)
		return zero, err
	}
	return v, nil
}

// text returns the raw table text, from the cache when fresh.
func (t *Tables) text(ctx context.Context, name, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("table %s: no source configured", name)
	}
	if t.cache != nil {
		v, ok, err := t.cache.Get(ctx, name)
		if err != nil {
			t.logger.WarnContext(ctx, "reference table cache read failed", "table", name, "err", err)
		} else if ok {
			return v, nil
		}
	}

	v, err := t.fetcher.Fetch(ctx, url)
	if err != nil {
		t.logger.WarnContext(ctx, "reference table unavailable", "table", name, "err", err)
		return "", fmt.Errorf("table %s: %w", name, err)
	}
	if t.cache != nil {
		if err := t.cache.Set(ctx, name, v, t.ttl); err != nil {
			t.logger.WarnContext(ctx, "reference table cache write failed", "table", name, "err", err)
		}
	}
	return v, nil
}
