package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute validity of an issued token. Tokens are
// self-contained and stay valid until expiry; there is no revocation list.
const TokenTTL = 10 * 24 * time.Hour

var (
	ErrNoAuthHeader = errors.New("header Authorization is not found")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims bind a user name and an absolute expiry, nothing else.
type Claims struct {
	jwt.RegisteredClaims
}

// NewToken issues a signed HS256 token for the given user name.
func NewToken(name string, secret []byte) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(secret)
}

// ParseToken recomputes the signature and rejects expired tokens. It performs
// no I/O: a token is valid until its expiry regardless of account changes.
func ParseToken(token string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// FromHeader extracts the bearer credential from an Authorization header
// value and verifies it.
func FromHeader(header string, secret []byte) (*Claims, error) {
	if header == "" {
		return nil, ErrNoAuthHeader
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrInvalidToken
	}

	return ParseToken(parts[1], secret)
}
