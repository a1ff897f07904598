package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	avatars        store.AvatarStorage

	pageSize int

	now func() time.Time

	logger *logger.Logger
}

func NewPostService(storages *store.Storages, cfg config.App, logger *logger.Logger) PostService {
	return &postService{
		postRepository: storages.PostRepository,
		userRepository: storages.UserRepository,
		avatars:        storages.AvatarStorage,
		pageSize:       cfg.PageSize,
		now:            time.Now,
		logger:         logger,
	}
}

// Create publishes a new post by author, dated now.
func (s *postService) Create(ctx context.Context, author models.User, form models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		Title:     form.Title,
		Content:   form.Content,
		CreatedAt: s.now().UTC(),
		AuthorID:  author.ID,
	})
	if err != nil {
		log.Err(err).Int64("author_id", author.ID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	post.Author = s.author(author)
	log.Info().Int64("id", post.ID).Int64("author_id", author.ID).Msg("post created")
	return post, nil
}

func (s *postService) Get(ctx context.Context, postID int64) (models.Post, error) {
	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("post search failed: %w", err)
	}
	s.resolveImage(&post)
	return post, nil
}

// GetForEdit returns the post only if actor may change it.
func (s *postService) GetForEdit(ctx context.Context, postID int64, actor models.User) (models.Post, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if err = AssertOwner(post, actor); err != nil {
		logger.FromContext(ctx).Warn().Int64("id", postID).Int64("actor_id", actor.ID).Msg("edit of foreign post denied")
		return models.Post{}, err
	}
	return post, nil
}

// Update replaces title and content. ID, author and date stay the same.
func (s *postService) Update(ctx context.Context, postID int64, actor models.User, form models.PostRequest) (models.Post, error) {
	post, err := s.GetForEdit(ctx, postID, actor)
	if err != nil {
		return models.Post{}, err
	}

	post.Title = form.Title
	post.Content = form.Content

	if err = s.postRepository.UpdatePost(ctx, post); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", postID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return post, nil
}

// Delete removes the post permanently.
func (s *postService) Delete(ctx context.Context, postID int64, actor models.User) error {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("post search failed: %w", err)
	}
	if err = AssertOwner(post, actor); err != nil {
		log.Warn().Int64("id", postID).Int64("actor_id", actor.ID).Msg("deletion of foreign post denied")
		return err
	}

	if err = s.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("id", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	log.Info().Int64("id", postID).Msg("post deleted")
	return nil
}

// ListAll returns one page of all posts, newest first. A page past the end
// is empty.
func (s *postService) ListAll(ctx context.Context, page int) (models.PostPage, error) {
	if page < 1 {
		return models.PostPage{}, ErrInvalidPage
	}

	posts, total, err := s.postRepository.ListPosts(ctx, page, s.pageSize)
	if err != nil {
		return models.PostPage{}, fmt.Errorf("post listing failed: %w", err)
	}

	return s.page(posts, page, total), nil
}

// ListByAuthor returns one page of the posts of username, newest first.
// An unknown username is store.ErrNoUserWasFound.
func (s *postService) ListByAuthor(ctx context.Context, username string, page int) (models.UserPostsResponse, error) {
	if page < 1 {
		return models.UserPostsResponse{}, ErrInvalidPage
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.UserPostsResponse{}, fmt.Errorf("author search failed: %w", err)
	}

	posts, total, err := s.postRepository.ListPostsByAuthor(ctx, user.ID, page, s.pageSize)
	if err != nil {
		return models.UserPostsResponse{}, fmt.Errorf("post listing failed: %w", err)
	}

	return models.UserPostsResponse{
		User:  s.author(user),
		Posts: s.page(posts, page, total),
	}, nil
}

func (s *postService) page(posts []models.Post, page int, total int64) models.PostPage {
	for i := range posts {
		s.resolveImage(&posts[i])
	}
	return models.NewPostPage(posts, page, s.pageSize, total)
}

func (s *postService) author(user models.User) models.Author {
	return models.Author{
		ID:        user.ID,
		Username:  user.Username,
		ImageFile: user.ImageFile,
		ImageURL:  s.avatars.URL(user.ImageFile),
	}
}

func (s *postService) resolveImage(post *models.Post) {
	if post.Author.ImageFile != "" {
		post.Author.ImageURL = s.avatars.URL(post.Author.ImageFile)
	}
}
