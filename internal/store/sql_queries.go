package store

import (
	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "image_file", "created_at"}

	postColumns = []string{
		"p.id",
		"p.title",
		"p.content",
		"p.created_at",
		"p.author_id",
		"u.username",
		"u.image_file",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "image_file", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.ImageFile, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectUserQuery selects a single user where column equals value.
func buildSelectUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateProfileQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(user.TableName()).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("image_file", user.ImageFile).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(post.TableName()).
		Columns("title", "content", "created_at", "author_id").
		Values(post.Title, post.Content, post.CreatedAt, post.AuthorID).
		Suffix("RETURNING id").
		ToSql()
}

// selectPosts is the base read of posts joined with their authors.
func selectPosts(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(postColumns...).
		From("posts p").
		Join("users u ON u.id = p.author_id")
}

func buildSelectPostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return selectPosts(b).
		Where(sq.Eq{"p.id": postID}).
		ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Update(post.TableName()).
		Set("title", post.Title).
		Set("content", post.Content).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}).
		ToSql()
}

// buildListPostsQuery selects one page of posts, newest first. A zero
// authorID lists every author. page is 1-indexed.
func buildListPostsQuery(b sq.StatementBuilderType, authorID int64, page, perPage int) (string, []any, error) {
	query := selectPosts(b)
	if authorID != 0 {
		query = query.Where(sq.Eq{"p.author_id": authorID})
	}

	return query.
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
}

func buildCountPostsQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	query := b.Select("COUNT(*)").From(models.Post{}.TableName())
	if authorID != 0 {
		query = query.Where(sq.Eq{"author_id": authorID})
	}

	return query.ToSql()
}
