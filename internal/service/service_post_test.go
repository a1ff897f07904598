package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type postMocks struct {
	posts   *mock.MockPostRepository
	users   *mock.MockUserRepository
	avatars *mock.MockAvatarStorage
}

func newTestPostSvc(t *testing.T, ctrl *gomock.Controller) (PostService, postMocks) {
	t.Helper()
	m := postMocks{
		posts:   mock.NewMockPostRepository(ctrl),
		users:   mock.NewMockUserRepository(ctrl),
		avatars: mock.NewMockAvatarStorage(ctrl),
	}
	m.avatars.EXPECT().URL(gomock.Any()).DoAndReturn(func(name string) string {
		return "/static/images/" + name
	}).AnyTimes()

	storages := &store.Storages{
		UserRepository: m.users,
		PostRepository: m.posts,
		AvatarStorage:  m.avatars,
	}
	return NewPostService(storages, testAppConfig(), logger.Nop()), m
}

var (
	alice = models.User{ID: 1, Username: "alice", ImageFile: "default.jpg"}
	bob   = models.User{ID: 2, Username: "bob", ImageFile: "default.jpg"}

	alicePost = models.Post{
		ID:       10,
		Title:    "Hello",
		Content:  "World",
		AuthorID: alice.ID,
		Author:   models.Author{ID: alice.ID, Username: "alice", ImageFile: "default.jpg"},
	}
)

func TestPostService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	m.posts.EXPECT().CreatePost(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			assert.Equal(t, "Hello", p.Title)
			assert.Equal(t, "World", p.Content)
			assert.Equal(t, alice.ID, p.AuthorID)
			assert.False(t, p.CreatedAt.IsZero())
			p.ID = 10
			return p, nil
		},
	)

	post, err := svc.Create(ctx, alice, models.PostRequest{Title: "Hello", Content: "World"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, "alice", post.Author.Username)
	assert.Equal(t, "/static/images/default.jpg", post.Author.ImageURL)
}

func TestPostService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	m.posts.EXPECT().GetPost(ctx, int64(10)).Return(alicePost, nil)
	m.posts.EXPECT().GetPost(ctx, int64(11)).Return(models.Post{}, store.ErrPostNotFound)

	post, err := svc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "alice", post.Author.Username)
	assert.Equal(t, "/static/images/default.jpg", post.Author.ImageURL)

	_, err = svc.Get(ctx, 11)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()
	form := models.PostRequest{Title: "New", Content: "Body"}

	t.Run("owner", func(t *testing.T) {
		m.posts.EXPECT().GetPost(ctx, int64(10)).Return(alicePost, nil)
		m.posts.EXPECT().UpdatePost(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Post) error {
				assert.Equal(t, int64(10), p.ID)
				assert.Equal(t, alice.ID, p.AuthorID)
				assert.Equal(t, "New", p.Title)
				assert.Equal(t, "Body", p.Content)
				return nil
			},
		)

		post, err := svc.Update(ctx, 10, alice, form)
		require.NoError(t, err)
		assert.Equal(t, "New", post.Title)
		assert.Equal(t, alicePost.CreatedAt, post.CreatedAt)
	})

	t.Run("non-owner", func(t *testing.T) {
		m.posts.EXPECT().GetPost(ctx, int64(10)).Return(alicePost, nil)

		_, err := svc.Update(ctx, 10, bob, form)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		m.posts.EXPECT().GetPost(ctx, int64(99)).Return(models.Post{}, store.ErrPostNotFound)

		_, err := svc.Update(ctx, 99, alice, form)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostService_GetForEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	m.posts.EXPECT().GetPost(ctx, int64(10)).Return(alicePost, nil).Times(2)

	post, err := svc.GetForEdit(ctx, 10, alice)
	require.NoError(t, err)
	assert.Equal(t, alicePost.ID, post.ID)

	_, err = svc.GetForEdit(ctx, 10, bob)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPostService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	t.Run("non-owner is refused and nothing is deleted", func(t *testing.T) {
		m.posts.EXPECT().GetPost(ctx, int64(10)).Return(alicePost, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 10, bob), ErrForbidden)
	})

	t.Run("owner", func(t *testing.T) {
		m.posts.EXPECT().GetPost(ctx, int64(10)).Return(alicePost, nil)
		m.posts.EXPECT().DeletePost(ctx, int64(10)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 10, alice))
	})
}

func TestPostService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	newest := []models.Post{
		{ID: 7, Author: models.Author{ImageFile: "a.png"}},
		{ID: 6}, {ID: 5}, {ID: 4}, {ID: 3},
	}
	m.posts.EXPECT().ListPosts(ctx, 1, 5).Return(newest, int64(7), nil)
	m.posts.EXPECT().ListPosts(ctx, 3, 5).Return(nil, int64(7), nil)

	page, err := svc.ListAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(7), page.Items[0].ID)
	assert.Equal(t, "/static/images/a.png", page.Items[0].Author.ImageURL)
	assert.Equal(t, 2, page.Pages)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)

	page, err = svc.ListAll(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)

	_, err = svc.ListAll(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPostService_ListByAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(alice, nil)
	m.posts.EXPECT().ListPostsByAuthor(ctx, alice.ID, 1, 5).Return([]models.Post{alicePost}, int64(1), nil)
	m.users.EXPECT().FindUserByUsername(ctx, "nobody").Return(models.User{}, store.ErrNoUserWasFound)

	res, err := svc.ListByAuthor(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "/static/images/default.jpg", res.User.ImageURL)
	assert.Equal(t, int64(1), res.Posts.Total)
	assert.Len(t, res.Posts.Items, 1)

	_, err = svc.ListByAuthor(ctx, "nobody", 1)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)

	_, err = svc.ListByAuthor(ctx, "alice", -1)
	assert.ErrorIs(t, err, ErrInvalidPage)
}
