package service

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// ResetAudience is the "aud" claim of password reset tokens.
const ResetAudience = "password-reset"

// resetTokenCodec issues self-contained reset tokens. Nothing is stored:
// a token is valid while its signature verifies and it has not expired.
// Tokens are not revoked by a password change.
type resetTokenCodec struct {
	signKey  string
	issuer   string
	duration time.Duration

	now func() time.Time
}

// NewResetTokenCodec returns a codec signing with cfg.SecretKey. now may be
// nil, in which case the wall clock is used.
func NewResetTokenCodec(cfg config.App, now func() time.Time) ResetTokenCodec {
	if now == nil {
		now = time.Now
	}
	return &resetTokenCodec{
		signKey:  cfg.SecretKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.ResetTokenDuration,
		now:      now,
	}
}

func (c *resetTokenCodec) Issue(userID int64) (string, error) {
	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   c.issuer,
		Audience: ResetAudience,
		UserID:   userID,
		IssuedAt: c.now(),
		Duration: c.duration,
		SignKey:  c.signKey,
	})
	if err != nil {
		return "", ErrTokenCreationFailed
	}
	return token.SignedString, nil
}

// Verify returns the user id carried by token, or ErrTokenIsExpiredOrInvalid.
func (c *resetTokenCodec) Verify(token string) (int64, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, c.signKey, c.issuer, ResetAudience, c.now)
	if err != nil {
		return 0, ErrTokenIsExpiredOrInvalid
	}
	return parsed.UserID, nil
}
