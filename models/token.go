package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned for tokens that name no user.
var ErrEmptySubject = errors.New("token has no subject")

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID reads the account id from the "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("reading token subject: %w", err)
	}
	if subject == "" {
		return 0, ErrEmptySubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", subject, err)
	}

	return userID, nil
}

// Session is an issued login session. It lives only inside the signed cookie
// value; the server keeps no copy.
type Session struct {
	// Token is the signed session token placed into the cookie.
	Token string

	// UserID is the authenticated user.
	UserID int64

	// Remember marks a session that must survive browser restarts.
	Remember bool

	// ExpiresAt is when the token stops verifying.
	ExpiresAt time.Time
}
