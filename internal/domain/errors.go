package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRoomID is returned when a room ID is not a plain decimal number.
	ErrInvalidRoomID = errors.New("invalid room id")
	// ErrProfileUnavailable is returned when the room profile could not be fetched or decoded.
	ErrProfileUnavailable = errors.New("room profile unavailable")
	// ErrArchiveAuthExpired is returned when the archive page asks for a login.
	ErrArchiveAuthExpired = errors.New("archive session expired")
	// ErrArchiveDisabled is returned when no platform session cookie is configured.
	ErrArchiveDisabled = errors.New("archive listing is not configured")
	// ErrLookupLogDisabled is returned when lookup history is requested without a database.
	ErrLookupLogDisabled = errors.New("lookup log is not configured")
)
