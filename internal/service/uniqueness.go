package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

func checkUsernameFree(ctx context.Context, users store.UserRepository, username string) error {
	_, err := users.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return validators.NewFieldError(validators.FieldUsername, ErrUsernameTaken)
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("user search by username failed: %w", err)
	}
}

func checkEmailFree(ctx context.Context, users store.UserRepository, email string) error {
	_, err := users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return validators.NewFieldError(validators.FieldEmail, ErrEmailTaken)
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("user search by email failed: %w", err)
	}
}
