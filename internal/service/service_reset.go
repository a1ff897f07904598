package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

const resetMailSubject = "Password Reset Request"

type passwordResetService struct {
	authService AuthService
	codec       ResetTokenCodec
	mailer      adapter.Mailer

	baseURL string

	logger *logger.Logger
}

func NewPasswordResetService(authService AuthService, codec ResetTokenCodec, mailer adapter.Mailer, cfg config.App, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		authService: authService,
		codec:       codec,
		mailer:      mailer,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		logger:      logger,
	}
}

// RequestReset mails a reset link when an account with the given email
// exists. The result does not reveal whether it does: an unknown email and
// a failed delivery both return nil.
func (s *passwordResetService) RequestReset(ctx context.Context, form models.ResetRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.authService.FindByEmail(ctx, form.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Msg("reset requested for unknown email")
		return nil
	case err != nil:
		return err
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("reset token was not issued")
		return err
	}

	if err = s.mailer.Send(ctx, s.resetEmail(user, token)); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("reset email was not sent")
		return nil
	}

	log.Info().Int64("id", user.ID).Msg("reset email sent")
	return nil
}

// ResetPassword sets a new password for the user the token was issued to.
func (s *passwordResetService) ResetPassword(ctx context.Context, token string, form models.PasswordRequest) error {
	userID, err := s.codec.Verify(token)
	if err != nil {
		return err
	}

	err = s.authService.UpdatePassword(ctx, userID, form.Password)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrTokenIsExpiredOrInvalid
	}
	return err
}

func (s *passwordResetService) resetEmail(user models.User, token string) models.Email {
	link := fmt.Sprintf("%s/reset_password/%s", s.baseURL, token)
	return models.Email{
		To:      user.Email,
		Subject: resetMailSubject,
		Body: "To reset your password, visit the following link:\n" +
			link + "\n\n" +
			"If you did not make this request then simply ignore this email and no changes will be made.\n",
	}
}
