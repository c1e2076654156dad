package showroom

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"roomorganizer/internal/domain"
)

// MaxRosterPages bounds the pages fetched for one event roster. At the
// platform's page size this covers several thousand participants.
const MaxRosterPages = 100

// rosterListFields are the names the roster array has been published under,
// in lookup order.
var rosterListFields = []string{"list", "room_list", "event_entry_list", "entries", "data", "event_list"}

type rosterEntry struct {
	RoomID      flexID `json:"room_id"`
	OrganizerID flexID `json:"organizer_id"`
}

// rosterPage is one decoded page. NextPage and LastPage are nil when the
// response does not carry them.
type rosterPage struct {
	Entries  []rosterEntry
	NextPage *int
	LastPage *int
}

// FetchRoster returns every participant of eventID in source order.
//
// Pagination stops on the first of: a transport error, a non-200 status or an
// undecodable body; a page without entries; next_page being null, zero or not
// ahead of the current page; the current page reaching last_page when
// next_page is absent; MaxRosterPages. Entries gathered before a failure are
// returned.
func (c *Client) FetchRoster(ctx context.Context, eventID string) []domain.EventRosterEntry {
	var out []domain.EventRosterEntry
	page := 1
	for fetched := 0; fetched < MaxRosterPages; fetched++ {
		p, ok := c.fetchRosterPage(ctx, eventID, page)
		if !ok || len(p.Entries) == 0 {
			break
		}
		for _, e := range p.Entries {
			out = append(out, domain.EventRosterEntry{
				RoomID:      string(e.RoomID),
				OrganizerID: organizerID(e.OrganizerID),
			})
		}

		next, more := nextRosterPage(page, p)
		if !more {
			break
		}
		page = next
	}
	return out
}

func nextRosterPage(current int, p rosterPage) (int, bool) {
	if p.NextPage != nil {
		if *p.NextPage <= current {
			return 0, false
		}
		return *p.NextPage, true
	}
	if p.LastPage != nil && current >= *p.LastPage {
		return 0, false
	}
	return current + 1, true
}

func (c *Client) fetchRosterPage(ctx context.Context, eventID string, page int) (rosterPage, bool) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"event_id": eventID,
			"p":        strconv.Itoa(page),
		}).
		Get(roomListPath)
	if err != nil {
		c.logger.WarnContext(ctx, "event roster fetch failed", "event_id", eventID, "page", page, "err", err)
		return rosterPage{}, false
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.DebugContext(ctx, "event roster page not available", "event_id", eventID, "page", page, "status", resp.StatusCode())
		return rosterPage{}, false
	}
	p, err := decodeRosterPage(resp.Body())
	if err != nil {
		c.logger.WarnContext(ctx, "event roster decode failed", "event_id", eventID, "page", page, "err", err)
		return rosterPage{}, false
	}
	return p, true
}

func decodeRosterPage(body []byte) (rosterPage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return rosterPage{}, err
	}

	var p rosterPage
	for _, name := range rosterListFields {
		raw, ok := fields[name]
		if !ok || len(raw) == 0 || raw[0] != '[' {
			continue
		}
		if err := json.Unmarshal(raw, &p.Entries); err != nil {
			return rosterPage{}, err
		}
		break
	}
	p.NextPage = pageHint(fields["next_page"])
	p.LastPage = pageHint(fields["last_page"])
	return p, nil
}

// pageHint decodes a pagination field. A present null decodes to zero so it
// ends pagination; a missing field decodes to nil.
func pageHint(raw json.RawMessage) *int {
	if raw == nil {
		return nil
	}
	var id flexID
	if err := id.UnmarshalJSON(raw); err != nil {
		n := 0
		return &n
	}
	n, err := strconv.Atoi(string(id))
	if err != nil {
		n = 0
	}
	return &n
}
