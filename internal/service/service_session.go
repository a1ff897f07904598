package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// SessionAudience is the "aud" claim of session tokens. It keeps session
// tokens and reset tokens from being accepted in place of each other.
const SessionAudience = "session"

type sessionService struct {
	userRepository store.UserRepository

	signKey          string
	issuer           string
	sessionDuration  time.Duration
	rememberDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewSessionService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository:   userRepository,
		signKey:          cfg.SecretKey,
		issuer:           cfg.TokenIssuer,
		sessionDuration:  cfg.SessionDuration,
		rememberDuration: cfg.RememberDuration,
		now:              time.Now,
		logger:           logger,
	}
}

// Issue signs a session token for user. A remembered session lives for the
// remember duration, any other one for the session duration.
func (s *sessionService) Issue(ctx context.Context, user models.User, remember bool) (models.Session, error) {
	duration := s.sessionDuration
	if remember {
		duration = s.rememberDuration
	}

	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   s.issuer,
		Audience: SessionAudience,
		UserID:   user.ID,
		IssuedAt: s.now(),
		Duration: duration,
		SignKey:  s.signKey,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		Token:     token.SignedString,
		UserID:    user.ID,
		Remember:  remember,
		ExpiresAt: token.ExpiresAt.Time,
	}, nil
}

func (s *sessionService) Current(ctx context.Context, token string) models.Principal {
	if token == "" {
		return models.Anonymous{}
	}

	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, SessionAudience, s.now)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Anonymous{}
	}

	user, err := s.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		log.Debug().Err(err).Int64("id", parsed.UserID).Msg("session user not loaded")
		return models.Anonymous{}
	}

	return models.Authenticated{User: user}
}
