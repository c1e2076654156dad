package domain

import "time"

// TokenIssuer issues operator bearer tokens for the protected endpoints.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the operator it was issued to.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
