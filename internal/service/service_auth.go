package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It keeps accounts in a UserRepository and never stores or logs a
// plain-text password.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks password hashes.
	hasher PasswordHasher

	// dummyHash is compared against when the email is unknown, so that a
	// missing account costs the same time as a wrong password.
	dummyHash string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by userRepository. It
// fails when hasher cannot produce the hash used for unknown emails.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash("dummy-password")
	if err != nil {
		logger.Err(err).Msg("dummy password hash could not be created")
		return nil, fmt.Errorf("creating auth service: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		dummyHash:      dummyHash,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// Register creates a new account.
//
// Username and email are checked for uniqueness before the insert; a
// concurrent registration that wins the race is still caught by the unique
// constraints and reported as store.ErrUserAlreadyExists.
func (a *authService) Register(ctx context.Context, form models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := checkUsernameFree(ctx, a.userRepository, form.Username); err != nil {
		return models.User{}, err
	}
	if err := checkEmailFree(ctx, a.userRepository, form.Email); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(form.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		ImageFile:    models.DefaultImageFile,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// VerifyCredentials returns the user owning email if password matches.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) VerifyCredentials(ctx context.Context, form models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, form.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		a.hasher.Compare(a.dummyHash, form.Password)
		log.Debug().Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(user.PasswordHash, form.Password) {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (a *authService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}

// UpdatePassword re-hashes password and stores it for userID.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("password hashing failed")
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("password updated")
	return nil
}

// ChangePassword replaces the password of a logged-in user after checking
// the current one.
func (a *authService) ChangePassword(ctx context.Context, userID int64, form models.PasswordRequest) error {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Compare(user.PasswordHash, form.CurrentPassword) {
		return validators.NewFieldError(validators.FieldCurrentPassword, ErrWrongPassword)
	}

	return a.UpdatePassword(ctx, userID, form.Password)
}
