// Package token inspects the opaque bearer tokens issued by the server.
// The server is the only party that verifies signatures; this package does
// a structural decode of the claims for display and diagnostics and must
// never be used as a security boundary.
package token

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when the token is not a decodable JWT.
var ErrMalformed = errors.New("token: malformed token")

// Info is the unverified claim set of a bearer token.
type Info struct {
	// TokenType distinguishes access from refresh tokens.
	TokenType string
	// UserID is the account id the token was issued for.
	UserID int64
	// ID is the server-assigned token identifier (jti).
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is in the past at the
// given instant. Tokens without an exp claim never report expired.
func (i *Info) Expired(now time.Time) bool {
	return i != nil && !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

type rawClaims struct {
	TokenType string      `json:"token_type"`
	UserID    json.Number `json:"user_id"`
	JTI       string      `json:"jti"`
	jwt.RegisteredClaims
}

// Peek decodes the claim segment without verifying the signature.
func Peek(tokenStr string) (*Info, error) {
	var claims rawClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}

	info := &Info{
		TokenType: claims.TokenType,
		ID:        claims.JTI,
	}
	if uid, err := claims.UserID.Int64(); err == nil {
		info.UserID = uid
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
