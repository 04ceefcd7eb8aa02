package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentColumns = `id, user_id, user_name, user_email, body, created_at, updated_at`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.UserID, &c.UserName, &c.UserEmail, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) collect(rows pgx.Rows) ([]model.Comment, error) {
	defer rows.Close()
	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

// ListAll returns every feedback comment, newest first.
func (r *CommentRepo) ListAll(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+` FROM comments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListPage returns one page of comments, newest first.
func (r *CommentRepo) ListPage(ctx context.Context, limit, offset int) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// Count returns the total number of feedback comments.
func (r *CommentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count)
	return count, err
}

// Insert stores a new comment. userID and userEmail are nil for anonymous
// submissions.
func (r *CommentRepo) Insert(ctx context.Context, userID *int64, userName string, userEmail *string, body string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (user_id, user_name, user_email, body)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + commentColumns
	return scanComment(r.pool.QueryRow(ctx, query, userID, userName, userEmail, body))
}

// Update replaces the body of a comment owned by the user, or returns
// pgx.ErrNoRows when the comment doesn't exist or belongs to someone else.
func (r *CommentRepo) Update(ctx context.Context, commentID, userID int64, body string) (*model.Comment, error) {
	query := `
		UPDATE comments
		SET body = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + commentColumns
	return scanComment(r.pool.QueryRow(ctx, query, commentID, userID, body))
}

// Delete removes a comment owned by the user. Returns false when no row
// matched (missing or not the owner).
func (r *CommentRepo) Delete(ctx context.Context, commentID, userID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM comments WHERE id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser returns all comments authored by the user, newest first.
func (r *CommentRepo) ListByUser(ctx context.Context, userID int64) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}
