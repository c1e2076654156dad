package domain

import (
	"math"
	"strconv"
	"strings"
)

// CanonicalRoomID normalizes a room identifier coming from any source (query
// string, JSON number, CSV cell). Integral numbers lose their decimal part and
// padding, so "507948", 507948 and " 507948.0 " compare equal. Non-numeric
// values are only trimmed.
func CanonicalRoomID(raw string) string {
	s := strings.TrimSpace(raw)
	if n, ok := integralString(s); ok {
		return n
	}
	return s
}

// CanonicalOrganizerID returns the directory key for an organizer identifier
// and false when the value means "no organizer assigned": blank, "-", zero,
// "null", or anything that is not an integral number.
func CanonicalOrganizerID(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || strings.EqualFold(s, "null") {
		return "", false
	}
	n, ok := integralString(s)
	if !ok || n == "0" {
		return "", false
	}
	return n, true
}

// CanonicalEventID trims an event identifier and drops a trailing ".0".
// Zero and blank mean absent.
func CanonicalEventID(raw string) string {
	s := CanonicalRoomID(raw)
	if s == "0" || s == "-" {
		return ""
	}
	return s
}

// IsNumericID reports whether s (after trimming) canonicalizes to an integer.
func IsNumericID(s string) bool {
	_, ok := integralString(strings.TrimSpace(s))
	return ok
}

// ValidateRoomID checks the form of a user-supplied room ID: ASCII digits only.
func ValidateRoomID(roomID string) error {
	if roomID == "" {
		return ErrInvalidRoomID
	}
	for _, r := range roomID {
		if r < '0' || r > '9' {
			return ErrInvalidRoomID
		}
	}
	return nil
}

func integralString(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}
