package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with the assigned ID. An AuthorID
// with no matching user yields [ErrNoUserWasFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		if r.db.classify(err) == ClassForeignKeyViolation {
			return models.Post{}, ErrNoUserWasFound
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// GetPost loads a post together with its author.
func (r *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostQuery(r.db.builder, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePost overwrites title and content of post.ID. Identity, author and
// creation time are never touched.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execPostStatement(ctx, "*postRepository.UpdatePost", query, args)
}

// DeletePost removes the post permanently.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.builder, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execPostStatement(ctx, "*postRepository.DeletePost", query, args)
}

// ListPosts returns one page of all posts, newest first.
func (r *postRepository) ListPosts(ctx context.Context, page, perPage int) ([]models.Post, int64, error) {
	return r.listPosts(ctx, 0, page, perPage)
}

// ListPostsByAuthor returns one page of the author's posts, newest first.
func (r *postRepository) ListPostsByAuthor(ctx context.Context, authorID int64, page, perPage int) ([]models.Post, int64, error) {
	return r.listPosts(ctx, authorID, page, perPage)
}

func (r *postRepository) listPosts(ctx context.Context, authorID int64, page, perPage int) ([]models.Post, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountPostsQuery(r.db.builder, authorID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error counting posts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if page > 1 && int64(page-1) >= pageCount(total, perPage) {
		return []models.Post{}, total, nil
	}

	query, args, err := buildListPostsQuery(r.db.builder, authorID, page, perPage)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.listPosts").Msg("error selecting posts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, perPage)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.listPosts").Msg("error scanning post")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, total, nil
}

// pageCount is the number of pages needed for total rows, at least one.
func pageCount(total int64, perPage int) int64 {
	if perPage < 1 || total < 1 {
		return 1
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

func (r *postRepository) execPostStatement(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.AuthorID,
		&post.Author.Username,
		&post.Author.ImageFile,
	)
	post.Author.ID = post.AuthorID
	return post, err
}
