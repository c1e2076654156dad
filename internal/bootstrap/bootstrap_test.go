package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomorganizer/config"
	"roomorganizer/internal/domain"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Environment:       "test",
		TableCacheTTL:     time.Minute,
		HTTPTimeout:       2 * time.Second,
		ShowroomBaseURL:   baseURL,
		RoomListURL:       baseURL + "/room_list.csv",
		EventLiverListURL: baseURL + "/event_liver_list.csv",
		OrganizerListURL:  baseURL + "/organizer_list.csv",
		JWTSecret:         "test-secret",
	}
}

func platformServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/room/profile", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"room_id":100,"room_name":"Alpha","room_url_key":"alpha","is_official":true,"event":null}`)
	})
	mux.HandleFunc("/room_list.csv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "room_id\n100\n")
	})
	mux.HandleFunc("/event_liver_list.csv", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/organizer_list.csv", func(w http.ResponseWriter, r *http.Request) {})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_InMemory(t *testing.T) {
	srv := platformServer(t)
	app, err := New(context.Background(), testConfig(srv.URL), discardLogger())
	require.NoError(t, err)
	defer app.Close()

	lookup, err := app.Organizers.LookupOrganizer(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictManagedRoster, lookup.Verdict)
	assert.Equal(t, domain.ManagedRosterName, lookup.OrganizerName)

	_, _, err = app.Organizers.ListRecentLookups(context.Background(), domain.PaginationParams{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, domain.ErrLookupLogDisabled)

	token, err := app.Tokens.Issue("ops", time.Minute)
	require.NoError(t, err)
	subject, err := app.Tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
}

func TestNew_RedisCache(t *testing.T) {
	srv := platformServer(t)
	mr := miniredis.RunT(t)
	cfg := testConfig(srv.URL)
	cfg.RedisAddr = mr.Addr()

	app, err := New(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer app.Close()

	require.NoError(t, app.Tables.Warm(context.Background()))
	assert.True(t, mr.Exists("reftable:room_list"))
}

func TestNew_ArchivesUnknownAccount(t *testing.T) {
	srv := platformServer(t)
	app, err := New(context.Background(), testConfig(srv.URL), discardLogger())
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Archives.ListArchives(context.Background(), "acct")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
