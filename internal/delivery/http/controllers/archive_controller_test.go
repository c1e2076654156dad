package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roomorganizer/internal/delivery/http/helpers"
	"roomorganizer/internal/domain"
)

type mockArchiveService struct {
	listing *domain.ArchiveListing
	err     error

	gotAccount string
	called     bool
}

func (m *mockArchiveService) ListArchives(ctx context.Context, accountID string) (*domain.ArchiveListing, error) {
	m.called = true
	m.gotAccount = accountID
	if m.err != nil {
		return nil, m.err
	}
	return m.listing, nil
}

func postArchives(ctrl *ArchiveController, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/archives", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ctrl.ListArchives(w, req)
	return w
}

func TestArchiveController_ListArchives_Success(t *testing.T) {
	svc := &mockArchiveService{listing: &domain.ArchiveListing{
		RoomID:     "100",
		RoomURLKey: "alpha_key",
		RoomName:   "Alpha",
		Archives: []*domain.ArchiveEntry{
			{TimePeriod: "2026/01/01 20:00 - 21:00", DownloadURL: "https://example.test/a.mp4", Filename: "a.mp4"},
		},
	}}
	ctrl := NewArchiveController(testLogger(), svc)

	w := postArchives(ctrl, `{"account_id":"acct-1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if svc.gotAccount != "acct-1" {
		t.Errorf("service called with %q", svc.gotAccount)
	}
	var resp struct {
		Data domain.ArchiveListing `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.RoomURLKey != "alpha_key" || len(resp.Data.Archives) != 1 {
		t.Errorf("unexpected listing %+v", resp.Data)
	}
}

func TestArchiveController_ListArchives_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing account", `{}`},
		{"blank account", `{"account_id":"   "}`},
		{"unknown field", `{"account_id":"a","room_id":"1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockArchiveService{}
			ctrl := NewArchiveController(testLogger(), svc)

			w := postArchives(ctrl, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
			if svc.called {
				t.Error("service should not be called")
			}
		})
	}
}

func TestArchiveController_ListArchives_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown account", fmt.Errorf("account: %w", domain.ErrNotFound), http.StatusNotFound, helpers.ErrCodeNotFound},
		{"not configured", domain.ErrArchiveDisabled, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable},
		{"session expired", fmt.Errorf("scrape: %w", domain.ErrArchiveAuthExpired), http.StatusBadGateway, helpers.ErrCodeSessionExpired},
		{"profile unavailable", fmt.Errorf("profile: %w", domain.ErrProfileUnavailable), http.StatusBadGateway, helpers.ErrCodeProfileUnavailable},
		{"scrape failure", errors.New("connection reset"), http.StatusBadGateway, helpers.ErrCodeUpstreamFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewArchiveController(testLogger(), &mockArchiveService{err: tt.err})

			w := postArchives(ctrl, `{"account_id":"secret-account"}`)

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			e := decodeError(t, w)
			if e.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, e.Code)
			}
			if strings.Contains(e.Message, "secret-account") {
				t.Errorf("error message leaks account id: %q", e.Message)
			}
		})
	}
}
