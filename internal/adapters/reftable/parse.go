package reftable

import (
	"encoding/csv"
	"strings"
	"unicode"

	"roomorganizer/internal/domain"
)

// readRecords parses CSV text tolerating ragged rows and stray quotes.
func readRecords(text string) ([][]string, error) {
	return readCSV(text, true)
}

// readCSV keeps leading spaces when trimLeading is false, so fields split on
// an unquoted comma can be joined back verbatim.
func readCSV(text string, trimLeading bool) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = trimLeading
	return r.ReadAll()
}

// dataRows drops blank rows and a leading header row. The first row is a
// header when its key column is not a numeric identifier.
func dataRows(records [][]string, keyCol int) [][]string {
	out := make([][]string, 0, len(records))
	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		if i == 0 && (len(rec) <= keyCol || !domain.IsNumericID(rec[keyCol])) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseRoomRoster reads the managed roster: room IDs in the first column.
func parseRoomRoster(text string) (domain.RoomSet, error) {
	records, err := readRecords(text)
	if err != nil {
		return nil, err
	}
	set := make(domain.RoomSet)
	for _, rec := range dataRows(records, 0) {
		if id := domain.CanonicalRoomID(rec[0]); id != "" {
			set[id] = struct{}{}
		}
	}
	return set, nil
}

// parseEventRoomMap reads (room_id, event_id) rows. The first row for a room wins.
func parseEventRoomMap(text string) (map[string]string, error) {
	records, err := readRecords(text)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string)
	for _, rec := range dataRows(records, 0) {
		if len(rec) < 2 {
			continue
		}
		room := domain.CanonicalRoomID(rec[0])
		event := domain.CanonicalEventID(rec[1])
		if room == "" || event == "" {
			continue
		}
		if _, seen := m[room]; !seen {
			m[room] = event
		}
	}
	return m, nil
}

const (
	accountRoomCol = 0
	accountIDCol   = 3
)

// parseAccountRoomMap reads the room list's account column (D) against its
// room column (A).
func parseAccountRoomMap(text string) (map[string]string, error) {
	records, err := readRecords(text)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string)
	for _, rec := range dataRows(records, accountRoomCol) {
		if len(rec) <= accountIDCol {
			continue
		}
		account := strings.TrimSpace(rec[accountIDCol])
		room := domain.CanonicalRoomID(rec[accountRoomCol])
		if account == "" || room == "" {
			continue
		}
		m[account] = room
	}
	return m, nil
}

// directoryParser turns directory records into id → name.
type directoryParser func(records [][]string) map[string]string

func parseOrganizerDirectory(text string) (map[string]string, error) {
	records, err := readCSV(text, false)
	if err != nil {
		return nil, err
	}
	return directoryParserFor(records)(records), nil
}

// directoryParserFor picks the parser from the first non-blank row, so a
// ragged row later in the table cannot change how the rest is read. The
// table is two-column when that row has a second field and its first field is
// a single token.
func directoryParserFor(records [][]string) directoryParser {
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		first := strings.TrimSpace(rec[0])
		if len(rec) >= 2 && !strings.ContainsFunc(first, unicode.IsSpace) {
			return parseTwoColumnDirectory
		}
		return parseSplitColumnDirectory
	}
	return parseSplitColumnDirectory
}

// parseTwoColumnDirectory reads (organizer_id, organizer_name) rows. Rows
// without a name column are skipped.
func parseTwoColumnDirectory(records [][]string) map[string]string {
	dir := make(map[string]string)
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		addDirectoryEntry(dir, rec[0], rec[1])
	}
	return dir
}

// parseSplitColumnDirectory reads single-column rows holding "id name",
// split on the first run of whitespace. Unquoted commas in the name are
// restored from the extra fields.
func parseSplitColumnDirectory(records [][]string) map[string]string {
	dir := make(map[string]string)
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		id, name := splitFirstSpace(strings.TrimSpace(strings.Join(rec, ",")))
		addDirectoryEntry(dir, id, name)
	}
	return dir
}

// addDirectoryEntry skips header and sentinel rows: only integral IDs are
// directory keys. The first row for an ID wins.
func addDirectoryEntry(dir map[string]string, rawID, rawName string) {
	id, ok := domain.CanonicalOrganizerID(rawID)
	if !ok {
		return
	}
	name := strings.TrimSpace(rawName)
	if name == "" {
		return
	}
	if _, seen := dir[id]; !seen {
		dir[id] = name
	}
}

func splitFirstSpace(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
