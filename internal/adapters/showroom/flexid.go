package showroom

import (
	"bytes"
	"encoding/json"
	"strings"

	"roomorganizer/internal/domain"
)

// flexID decodes an identifier the API may send as a number, a string, or
// null. The decoded value is already canonical; null and blank decode to "".
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var raw string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			// booleans, objects and arrays carry no identifier
			*f = ""
			return nil
		}
		raw = n.String()
	}
	*f = flexID(domain.CanonicalRoomID(strings.TrimSpace(raw)))
	return nil
}

// organizerID converts a decoded organizer field to its canonical directory
// key; the sentinel forms (null, 0, "-") become "".
func organizerID(f flexID) string {
	id, ok := domain.CanonicalOrganizerID(string(f))
	if !ok {
		return ""
	}
	return id
}
