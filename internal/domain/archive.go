package domain

import "context"

// ArchiveEntry is one downloadable broadcast archive.
// swagger:model ArchiveEntry
type ArchiveEntry struct {
	TimePeriod  string `json:"time_period"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
}

// ArchiveListing is the archive page of one room.
// swagger:model ArchiveListing
type ArchiveListing struct {
	RoomID     string          `json:"room_id"`
	RoomURLKey string          `json:"room_url_key"`
	RoomName   string          `json:"room_name"`
	Archives   []*ArchiveEntry `json:"archives"`
}

// ArchiveScraper reads the live-archive page of a room.
type ArchiveScraper interface {
	ScrapeArchives(ctx context.Context, roomURLKey string) (roomName string, archives []*ArchiveEntry, err error)
}

// ArchiveService lists the recent archives of the room registered under an account ID.
type ArchiveService interface {
	ListArchives(ctx context.Context, accountID string) (*ArchiveListing, error)
}
