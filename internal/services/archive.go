package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"roomorganizer/internal/domain"
)

type archiveService struct {
	tables   domain.ReferenceTables
	profiles domain.ProfileFetcher
	scraper  domain.ArchiveScraper
	logger   *slog.Logger
}

// NewArchiveService returns the archive listing use case.
func NewArchiveService(tables domain.ReferenceTables, profiles domain.ProfileFetcher, scraper domain.ArchiveScraper, logger *slog.Logger) domain.ArchiveService {
	if logger == nil {
		logger = slog.Default()
	}
	return &archiveService{tables: tables, profiles: profiles, scraper: scraper, logger: logger}
}

// ListArchives resolves the account to its room through the room list, then
// reads the room's archive page. Account IDs act as access keys and are never
// logged or echoed in errors.
func (s *archiveService) ListArchives(ctx context.Context, accountID string) (*domain.ArchiveListing, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, fmt.Errorf("account: %w", domain.ErrNotFound)
	}
	roomID, ok := s.tables.LoadAccountRoomMap(ctx)[accountID]
	if !ok {
		return nil, fmt.Errorf("account: %w", domain.ErrNotFound)
	}

	profile, err := s.profiles.FetchProfile(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("archives for room %s: %w", roomID, err)
	}
	if profile.RoomURLKey == "" {
		return nil, fmt.Errorf("archives for room %s: %w: missing room_url_key", roomID, domain.ErrProfileUnavailable)
	}

	roomName, archives, err := s.scraper.ScrapeArchives(ctx, profile.RoomURLKey)
	if err != nil {
		return nil, fmt.Errorf("archives for room %s: %w", roomID, err)
	}
	s.logger.InfoContext(ctx, "archives listed", "room_id", roomID, "count", len(archives))

	return &domain.ArchiveListing{
		RoomID:     roomID,
		RoomURLKey: profile.RoomURLKey,
		RoomName:   roomName,
		Archives:   archives,
	}, nil
}
