package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"roomorganizer/internal/domain"
)

const tokenIssuer = "roomorganizer"

type jwtClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// operatorScope is the only scope issued; it grants the lookup history and
// archive endpoints.
const operatorScope = "operator"

type jwtSigner struct {
	secret []byte
	now    func() time.Time
}

// NewJWTSigner returns a TokenIssuer and TokenVerifier that sign and check
// HS256 tokens with the given secret.
func NewJWTSigner(secret string) interface {
	domain.TokenIssuer
	domain.TokenVerifier
} {
	return &jwtSigner{secret: []byte(secret), now: time.Now}
}

func (s *jwtSigner) Issue(subject string, expiry time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	now := s.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Scope: operatorScope,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtSigner) Verify(tokenString string) (string, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Scope != operatorScope {
		return "", errors.New("invalid token: missing operator scope")
	}
	return claims.Subject, nil
}
