package services

import (
	"context"
	"log/slog"

	"roomorganizer/internal/domain"
)

type organizerResolver struct {
	tables  domain.ReferenceTables
	rosters domain.RosterFetcher
	logger  *slog.Logger
}

// NewOrganizerResolver returns the resolver running the organizer fallback chain
// over the reference tables and event rosters.
func NewOrganizerResolver(tables domain.ReferenceTables, rosters domain.RosterFetcher, logger *slog.Logger) domain.OrganizerResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &organizerResolver{tables: tables, rosters: rosters, logger: logger}
}

// verdictStrategy is one link of the chain. ok reports whether it decided the
// verdict; later strategies run only when it did not.
type verdictStrategy func(ctx context.Context, roomID string, profile *domain.RoomProfile) (v domain.Verdict, ok bool)

// chain lists the strategies in priority order. Roster membership outranks an
// organizer found through event rosters.
func (r *organizerResolver) chain() []verdictStrategy {
	return []verdictStrategy{
		r.officialGate,
		r.managedRoster,
		r.eventOrganizer,
	}
}

func (r *organizerResolver) Resolve(ctx context.Context, roomID string, profile *domain.RoomProfile) domain.Verdict {
	if profile == nil {
		return domain.UnknownVerdict()
	}
	roomID = domain.CanonicalRoomID(roomID)
	for _, s := range r.chain() {
		if v, ok := s(ctx, roomID, profile); ok {
			return v
		}
	}
	return domain.UnknownVerdict()
}

func (r *organizerResolver) officialGate(_ context.Context, _ string, profile *domain.RoomProfile) (domain.Verdict, bool) {
	if !profile.IsOfficial {
		return domain.FreeVerdict(), true
	}
	return domain.Verdict{}, false
}

func (r *organizerResolver) managedRoster(ctx context.Context, roomID string, _ *domain.RoomProfile) (domain.Verdict, bool) {
	if r.tables.LoadRoomRoster(ctx).Contains(roomID) {
		return domain.ManagedRosterVerdict(), true
	}
	return domain.Verdict{}, false
}

func (r *organizerResolver) eventOrganizer(ctx context.Context, roomID string, profile *domain.RoomProfile) (domain.Verdict, bool) {
	organizerID, ok := r.discoverOrganizerID(ctx, roomID, profile)
	if !ok {
		return domain.Verdict{}, false
	}
	id, ok := domain.CanonicalOrganizerID(organizerID)
	if !ok {
		r.logger.DebugContext(ctx, "room has no organizer in event roster", "room_id", roomID)
		return domain.Verdict{}, false
	}
	name, ok := r.tables.LoadOrganizerDirectory(ctx)[id]
	if !ok || name == "" {
		r.logger.InfoContext(ctx, "organizer id not in directory", "room_id", roomID, "organizer_id", id)
		return domain.Verdict{}, false
	}
	return domain.IdentifiedVerdict(name), true
}

// discoverOrganizerID scans the rosters of the candidate events in order: the
// profile's current event, then the event from the fallback table. The first
// roster containing the room decides; its organizer ID may be empty.
// The fallback table is only loaded when the profile event did not match.
func (r *organizerResolver) discoverOrganizerID(ctx context.Context, roomID string, profile *domain.RoomProfile) (string, bool) {
	candidates := []func() string{
		func() string { return profile.CurrentEventID },
		func() string { return r.tables.LoadEventRoomMap(ctx)[roomID] },
	}
	tried := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		eventID := domain.CanonicalEventID(candidate())
		if eventID == "" || tried[eventID] {
			continue
		}
		tried[eventID] = true

		roster := r.rosters.FetchRoster(ctx, eventID)
		if e, ok := domain.FindRosterEntry(roster, roomID); ok {
			r.logger.DebugContext(ctx, "room found in event roster", "room_id", roomID, "event_id", eventID, "organizer_id", e.OrganizerID)
			return e.OrganizerID, true
		}
	}
	return "", false
}
