package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PasswordHasher turns passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches hash. It runs in constant
	// time with respect to the password.
	Compare(hash, password string) bool
}

// AuthService owns the credentials of blog accounts.
type AuthService interface {
	Register(ctx context.Context, form models.RegisterRequest) (models.User, error)
	VerifyCredentials(ctx context.Context, form models.LoginRequest) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, password string) error
	ChangePassword(ctx context.Context, userID int64, form models.PasswordRequest) error
}

// SessionService issues login sessions and resolves them back to a principal.
type SessionService interface {
	Issue(ctx context.Context, user models.User, remember bool) (models.Session, error)
	// Current never fails: anything that is not a valid session of an
	// existing user is [models.Anonymous].
	Current(ctx context.Context, token string) models.Principal
}

// ResetTokenCodec issues and verifies stateless password reset tokens.
type ResetTokenCodec interface {
	Issue(userID int64) (string, error)
	Verify(token string) (int64, error)
}

// PasswordResetService runs the reset-by-email flow.
type PasswordResetService interface {
	RequestReset(ctx context.Context, form models.ResetRequest) error
	ResetPassword(ctx context.Context, token string, form models.PasswordRequest) error
}

// PostService manages posts. Writes are allowed for the author only.
type PostService interface {
	Create(ctx context.Context, author models.User, form models.PostRequest) (models.Post, error)
	Get(ctx context.Context, postID int64) (models.Post, error)
	GetForEdit(ctx context.Context, postID int64, actor models.User) (models.Post, error)
	Update(ctx context.Context, postID int64, actor models.User, form models.PostRequest) (models.Post, error)
	Delete(ctx context.Context, postID int64, actor models.User) error
	ListAll(ctx context.Context, page int) (models.PostPage, error)
	ListByAuthor(ctx context.Context, username string, page int) (models.UserPostsResponse, error)
}

// AccountService manages the profile of the logged-in user.
type AccountService interface {
	Account(ctx context.Context, user models.User) models.Account
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Account, error)
}

type AppInfoService interface {
	Info(ctx context.Context) models.AppInfo
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper decorates a PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

// PasswordResetServiceWrapper decorates a PasswordResetService.
type PasswordResetServiceWrapper interface {
	Wrap(PasswordResetService) PasswordResetService
}

// AccountServiceWrapper decorates an AccountService.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
