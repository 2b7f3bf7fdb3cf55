package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity kinds carried in the token's typ claim.
const (
	TokenKindUser    = "user"
	TokenKindPartner = "foodpartner"
)

// TokenTTL matches the 7-day cookie expiry.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	return []byte(secret)
}

type tokenClaims struct {
	Kind string `json:"typ"`
	jwt.RegisteredClaims
}

// SignToken issues a bearer token for the given identity.
func SignToken(id uint, kind string) (string, error) {
	claims := tokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseToken validates a bearer token and returns the identity id and kind.
// Expired, malformed or wrongly-signed tokens all come back as
// ErrInvalidToken.
func ParseToken(tokenString string) (uint, string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	return uint(id), claims.Kind, nil
}
