package reftable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	sjis, err := japanese.ShiftJIS.NewEncoder().String("42,アクメ芸能\n")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/utf8.csv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\xEF\xBB\xBF42,アクメ芸能\n"))
	})
	mux.HandleFunc("/sjis.csv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sjis))
	})
	mux.HandleFunc("/gone.csv", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewHTTPFetcher(2 * time.Second)
	ctx := context.Background()

	got, err := f.Fetch(ctx, srv.URL+"/utf8.csv")
	require.NoError(t, err)
	assert.Equal(t, "42,アクメ芸能\n", got)

	got, err = f.Fetch(ctx, srv.URL+"/sjis.csv")
	require.NoError(t, err)
	assert.Equal(t, "42,アクメ芸能\n", got)

	_, err = f.Fetch(ctx, srv.URL+"/gone.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
