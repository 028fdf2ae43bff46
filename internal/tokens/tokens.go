// Package tokens signs and parses the client-held session cookie value.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Sign wraps a session id in a signed JWT suitable for a cookie value.
func Sign(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}

// Parse verifies the signature and expiry of a cookie value and returns the
// embedded session id.
func Parse(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return "", ErrInvalidToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
