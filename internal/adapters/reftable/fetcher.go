package reftable

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/encoding/japanese"
)

// Fetcher downloads a table and returns its text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type httpFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher returns a Fetcher doing single-attempt GETs with the given timeout.
func NewHTTPFetcher(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpFetcher{client: resty.New().SetTimeout(timeout).SetRetryCount(0)}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch table: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("table source returned status: %d", resp.StatusCode())
	}
	return decodeText(resp.Body())
}

// decodeText returns body as UTF-8. Tables exported from Japanese spreadsheet
// tools are often Shift_JIS, so bodies that are not valid UTF-8 are decoded as
// Shift_JIS.
func decodeText(body []byte) (string, error) {
	body = trimBOM(body)
	if utf8.Valid(body) {
		return string(body), nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("failed to decode table as shift_jis: %w", err)
	}
	return string(out), nil
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
