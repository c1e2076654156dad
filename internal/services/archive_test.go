package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomorganizer/internal/domain"
)

type fakeScraper struct {
	roomName string
	archives []*domain.ArchiveEntry
	err      error
	lastKey  string
}

func (f *fakeScraper) ScrapeArchives(ctx context.Context, roomURLKey string) (string, []*domain.ArchiveEntry, error) {
	f.lastKey = roomURLKey
	return f.roomName, f.archives, f.err
}

func TestArchiveService_ListArchives(t *testing.T) {
	tables := &fakeTables{accounts: map[string]string{"mksoul_live_001": "507948"}}
	profiles := &fakeProfiles{byRoom: map[string]*domain.RoomProfile{
		"507948": {RoomID: "507948", RoomURLKey: "room_a"},
		"111":    {RoomID: "111"},
	}}
	scraper := &fakeScraper{
		roomName: "Room A",
		archives: []*domain.ArchiveEntry{{TimePeriod: "20:00 - 21:00", DownloadURL: "https://cdn.example/a.mp4", Filename: "a.mp4"}},
	}
	svc := NewArchiveService(tables, profiles, scraper, testLogger)

	got, err := svc.ListArchives(context.Background(), " mksoul_live_001 ")
	require.NoError(t, err)
	assert.Equal(t, "room_a", scraper.lastKey)
	assert.Equal(t, &domain.ArchiveListing{
		RoomID:     "507948",
		RoomURLKey: "room_a",
		RoomName:   "Room A",
		Archives:   scraper.archives,
	}, got)
}

func TestArchiveService_ListArchives_Errors(t *testing.T) {
	tables := &fakeTables{accounts: map[string]string{
		"acct_ok":     "507948",
		"acct_nokey":  "111",
		"acct_noroom": "222",
	}}
	profiles := &fakeProfiles{byRoom: map[string]*domain.RoomProfile{
		"507948": {RoomID: "507948", RoomURLKey: "room_a"},
		"111":    {RoomID: "111"},
	}}

	tests := []struct {
		name       string
		account    string
		scraperErr error
		wantErr    error
	}{
		{"blank account", "  ", nil, domain.ErrNotFound},
		{"unknown account", "nobody", nil, domain.ErrNotFound},
		{"profile unavailable", "acct_noroom", nil, domain.ErrProfileUnavailable},
		{"profile without url key", "acct_nokey", nil, domain.ErrProfileUnavailable},
		{"session expired", "acct_ok", domain.ErrArchiveAuthExpired, domain.ErrArchiveAuthExpired},
		{"scrape failed", "acct_ok", errors.New("archive page returned status: 500"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewArchiveService(tables, profiles, &fakeScraper{err: tt.scraperErr}, testLogger)
			_, err := svc.ListArchives(context.Background(), tt.account)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if strings.TrimSpace(tt.account) != "" {
				assert.NotContains(t, err.Error(), tt.account)
			}
		})
	}
}
