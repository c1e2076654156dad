package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roomorganizer/internal/domain"
)

type organizerService struct {
	profiles       domain.ProfileFetcher
	resolver       domain.OrganizerResolver
	lookupLog      domain.LookupLogRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewOrganizerService returns the lookup use case. lookupLog may be nil, in
// which case lookups are not recorded. timeout bounds lookup log queries.
func NewOrganizerService(profiles domain.ProfileFetcher,
	resolver domain.OrganizerResolver,
	lookupLog domain.LookupLogRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.OrganizerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &organizerService{
		profiles:       profiles,
		resolver:       resolver,
		lookupLog:      lookupLog,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *organizerService) LookupOrganizer(ctx context.Context, roomID string) (*domain.OrganizerLookup, error) {
	if err := domain.ValidateRoomID(roomID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FetchProfile(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("lookup room %s: %w", roomID, err)
	}

	verdict := s.resolver.Resolve(ctx, roomID, profile)
	lookup := domain.NewOrganizerLookup(profile, verdict)
	s.logger.InfoContext(ctx, "organizer resolved", "room_id", lookup.RoomID, "verdict", lookup.Verdict)

	s.record(ctx, lookup)
	return lookup, nil
}

// record stores the lookup. Failures are logged only.
func (s *organizerService) record(ctx context.Context, lookup *domain.OrganizerLookup) {
	if s.lookupLog == nil {
		return
	}
	ctx, cancel := s.dbContext(ctx)
	defer cancel()
	if err := s.lookupLog.Create(ctx, domain.NewLookupRecord(lookup, s.now())); err != nil {
		s.logger.WarnContext(ctx, "failed to record lookup", "room_id", lookup.RoomID, "err", err)
	}
}

func (s *organizerService) ListRecentLookups(ctx context.Context, params domain.PaginationParams) ([]*domain.LookupRecord, int, error) {
	if s.lookupLog == nil {
		return nil, 0, domain.ErrLookupLogDisabled
	}
	ctx, cancel := s.dbContext(ctx)
	defer cancel()
	return s.lookupLog.ListRecent(ctx, params)
}

func (s *organizerService) dbContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.contextTimeout)
}
