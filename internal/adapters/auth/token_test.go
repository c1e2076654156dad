package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTSigner_IssueAndVerify(t *testing.T) {
	signer := NewJWTSigner("test-secret")

	token, err := signer.Issue("ops", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)

	// claims carry the operator scope
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, operatorScope, claims.Scope)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTSigner_Verify_Rejects(t *testing.T) {
	signer := &jwtSigner{secret: []byte("test-secret"), now: time.Now}

	expired := &jwtSigner{secret: []byte("test-secret"), now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
	expiredToken, err := expired.Issue("ops", time.Hour)
	require.NoError(t, err)

	otherSecret, err := NewJWTSigner("other").Issue("ops", time.Hour)
	require.NoError(t, err)

	noScope, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expiredToken},
		{"wrong secret", otherSecret},
		{"missing scope", noScope},
		{"garbage", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTSigner_Issue_RequiresSubject(t *testing.T) {
	_, err := NewJWTSigner("s").Issue("", time.Hour)
	assert.Error(t, err)
}
