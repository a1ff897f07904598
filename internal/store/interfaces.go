package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists blog accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateProfile(ctx context.Context, user models.User) error
}

// PostRepository persists posts. List methods return one page of posts,
// newest first, together with the total number of matching rows.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, postID int64) error
	ListPosts(ctx context.Context, page, perPage int) ([]models.Post, int64, error)
	ListPostsByAuthor(ctx context.Context, authorID int64, page, perPage int) ([]models.Post, int64, error)
}

// AvatarStorage keeps profile pictures and resolves their public URLs.
type AvatarStorage interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	URL(name string) string
}
