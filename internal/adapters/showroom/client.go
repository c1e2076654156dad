package showroom

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"roomorganizer/internal/domain"
)

const (
	profilePath  = "/api/room/profile"
	roomListPath = "/api/event/room_list"
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36"
)

// Config holds configuration for the platform client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Cookie is the raw "name=value; name2=value2" session string used for
	// pages that require a login. Empty disables archive scraping.
	Cookie string
}

// Client talks to the streaming platform's public API and pages.
type Client struct {
	http    *resty.Client
	baseURL string
	cookie  string
	logger  *slog.Logger
}

// NewClient returns a platform client. Requests are single-attempt; resty
// retries stay disabled.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)
	return &Client{http: client, baseURL: cfg.BaseURL, cookie: cfg.Cookie, logger: logger}
}

var (
	_ domain.ProfileFetcher = (*Client)(nil)
	_ domain.RosterFetcher  = (*Client)(nil)
	_ domain.ArchiveScraper = (*Client)(nil)
)

// profileResponse is the subset of the room profile API we read.
type profileResponse struct {
	RoomID     flexID `json:"room_id"`
	RoomName   string `json:"room_name"`
	RoomURLKey string `json:"room_url_key"`
	IsOfficial bool   `json:"is_official"`
	Event      *struct {
		EventID flexID `json:"event_id"`
	} `json:"event"`
	FollowerNum int `json:"follower_num"`
	RoomLevel   int `json:"room_level"`
}

// FetchProfile fetches the profile of roomID. Any failure is returned as an
// error wrapping domain.ErrProfileUnavailable.
func (c *Client) FetchProfile(ctx context.Context, roomID string) (*domain.RoomProfile, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json, text/javascript, */*; q=0.01").
		SetQueryParam("room_id", roomID).
		Get(profilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch profile: %v", domain.ErrProfileUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: profile api returned status: %d", domain.ErrProfileUnavailable, resp.StatusCode())
	}

	var data profileResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", domain.ErrProfileUnavailable, err)
	}

	profile := &domain.RoomProfile{
		RoomID:        string(data.RoomID),
		RoomName:      data.RoomName,
		RoomURLKey:    data.RoomURLKey,
		IsOfficial:    data.IsOfficial,
		FollowerCount: data.FollowerNum,
		RoomLevel:     data.RoomLevel,
	}
	if profile.RoomID == "" {
		profile.RoomID = domain.CanonicalRoomID(roomID)
	}
	if data.Event != nil {
		profile.CurrentEventID = domain.CanonicalEventID(string(data.Event.EventID))
	}
	return profile, nil
}
