package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/circlegallery/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenSource yields the bearer token for the next request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken serves one session token. When the token is a JWT its claims
// are read without verification (the server verifies) so an expired
// session fails locally instead of costing a round trip. Opaque tokens
// pass through unchanged.
type StaticToken struct {
	raw    string
	claims *jwt.RegisteredClaims
	now    func() time.Time
}

func NewStaticToken(raw string) *StaticToken {
	t := &StaticToken{raw: raw, now: time.Now}
	if raw == "" {
		return t
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err == nil {
		t.claims = claims
	}
	return t
}

func (t *StaticToken) Token(ctx context.Context) (string, error) {
	if t.Expired() {
		return "", common.ErrTokenExpired
	}
	return t.raw, nil
}

// Expired reports whether the token carries an exp claim in the past.
func (t *StaticToken) Expired() bool {
	if t.claims == nil || t.claims.ExpiresAt == nil {
		return false
	}
	return !t.now().Before(t.claims.ExpiresAt.Time)
}

// Subject is the JWT sub claim (the session's actor id), or "".
func (t *StaticToken) Subject() string {
	if t.claims == nil {
		return ""
	}
	return t.claims.Subject
}

// IsJWT reports whether the raw token parsed as a JWT.
func (t *StaticToken) IsJWT() bool {
	return t.claims != nil
}
