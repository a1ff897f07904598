package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTParams describes a token to be issued.
type JWTParams struct {
	// Issuer identifies the service that issued the token (iss).
	Issuer string
	// Audience scopes the token to one purpose (aud), e.g. "session".
	Audience string
	// UserID becomes the subject (sub).
	UserID int64
	// IssuedAt is the issuance moment (iat); expiry is IssuedAt+Duration.
	IssuedAt time.Time
	// Duration is how long the token remains valid.
	Duration time.Duration
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the purpose the token may be used for
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): params.IssuedAt
//   - ExpiresAt (exp): params.IssuedAt plus params.Duration
//
// Returns an error if the issuer, audience, sign key or duration is empty.
func GenerateJWTToken(params JWTParams) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	issuedAt := params.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Audience:  jwt.ClaimStrings{params.Audience},
		Subject:   strconv.FormatInt(params.UserID, 10),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(params.Duration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserID:           params.UserID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 only
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp) presence and check against now()
//   - Subject (sub) presence and conversion to int64 UserID
//
// now may be nil, in which case the wall clock is used.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, audience string, now func() time.Time) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, errors.New("empty token")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		options = append(options, jwt.WithTimeFunc(now))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
	}
	if parsed.UserID, err = parsed.GetUserID(); err != nil {
		return models.Token{}, err
	}

	return parsed, nil
}
