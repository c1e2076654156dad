package showroom

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"roomorganizer/internal/domain"
)

const archiveTitleSuffix = " 配信アーカイブ一覧"

// loginMarkers appear on the platform's login page, which is served in place
// of the archive list when the session cookie has expired.
var loginMarkers = []string{"ログイン", "会員登録", "サインイン"}

// ScrapeArchives reads /room/{roomURLKey}/live_archives with the configured
// session cookie and returns the room name and the downloadable archives.
func (c *Client) ScrapeArchives(ctx context.Context, roomURLKey string) (string, []*domain.ArchiveEntry, error) {
	if c.cookie == "" {
		return "", nil, domain.ErrArchiveDisabled
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"Cookie":          sessionCookieHeader(c.cookie),
			"Referer":         c.baseURL + "/room/" + roomURLKey,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "ja,en-US;q=0.9,en;q=0.8",
		}).
		SetPathParam("key", roomURLKey).
		Get("/room/{key}/live_archives")
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch archive page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", nil, fmt.Errorf("archive page returned status: %d", resp.StatusCode())
	}
	return parseArchivePage(resp.Body(), roomURLKey, time.Now())
}

// sessionCookieHeader normalizes a pasted cookie string and forces the
// Japanese locale so the page layout is the one we parse.
func sessionCookieHeader(raw string) string {
	var parts []string
	for _, item := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "i18n_redirected" {
			continue
		}
		parts = append(parts, name+"="+strings.TrimSpace(value))
	}
	parts = append(parts, "i18n_redirected=ja")
	return strings.Join(parts, "; ")
}

func parseArchivePage(body []byte, roomURLKey string, now time.Time) (string, []*domain.ArchiveEntry, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse archive page: %w", err)
	}

	roomName := "Unknown room"
	if p := findElement(doc, atom.P, "head-main"); p != nil {
		roomName = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(textContent(p)), archiveTitleSuffix))
	}

	table := findElement(doc, atom.Table, "table")
	if table == nil {
		page := string(body)
		for _, m := range loginMarkers {
			if strings.Contains(page, m) {
				return "", nil, domain.ErrArchiveAuthExpired
			}
		}
		return roomName, []*domain.ArchiveEntry{}, nil
	}

	archives := []*domain.ArchiveEntry{}
	tbody := findElement(table, atom.Tbody, "")
	if tbody == nil {
		return roomName, archives, nil
	}
	for row := tbody.FirstChild; row != nil; row = row.NextSibling {
		if row.Type != html.ElementNode || row.DataAtom != atom.Tr {
			continue
		}
		cells := childElements(row, atom.Td)
		if len(cells) != 2 {
			continue
		}
		link := findElement(cells[1], atom.A, "btn-light-green")
		if link == nil {
			continue
		}
		href, ok := attr(link, "href")
		if !ok || href == "" {
			continue
		}
		filename, ok := attr(link, "download")
		if !ok || filename == "" {
			filename = fmt.Sprintf("%s_%d.mp4", roomURLKey, now.Unix())
		}
		archives = append(archives, &domain.ArchiveEntry{
			TimePeriod:  strings.TrimSpace(textContent(cells[0])),
			DownloadURL: href,
			Filename:    filename,
		})
	}
	return roomName, archives, nil
}

// findElement returns the first element in n's subtree (n included) with the
// given tag and, when class is non-empty, carrying that class.
func findElement(n *html.Node, tag atom.Atom, class string) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == tag && (class == "" || hasClass(n, class)) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func childElements(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			out = append(out, c)
		}
	}
	return out
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, f := range strings.Fields(v) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
