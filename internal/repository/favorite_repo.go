package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
)

type FavoriteRepo struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepo(pool *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{pool: pool}
}

const favoriteColumns = `id, user_id, video_id, title, thumbnail, channel, channel_thumbnail,
       duration, views, published_time, description, date_added`

func scanFavorite(row pgx.Row) (*model.Favorite, error) {
	var f model.Favorite
	err := row.Scan(
		&f.ID, &f.UserID, &f.VideoID, &f.Title, &f.Thumbnail, &f.Channel, &f.ChannelThumbnail,
		&f.Duration, &f.Views, &f.PublishedTime, &f.Description, &f.DateAdded,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByUser returns all favorites of a user, newest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	query := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1
		ORDER BY date_added DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, *f)
	}
	return favorites, rows.Err()
}

// Insert stores a new favorite and returns the created row. The
// (user_id, video_id) unique constraint rejects duplicates.
func (r *FavoriteRepo) Insert(ctx context.Context, userID int64, v model.VideoPayload) (*model.Favorite, error) {
	query := `
		INSERT INTO favorites (user_id, video_id, title, thumbnail, channel, channel_thumbnail,
		                       duration, views, published_time, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + favoriteColumns
	return scanFavorite(r.pool.QueryRow(ctx, query,
		userID, v.VideoID, v.Title, v.Thumbnail, v.Channel, v.ChannelThumbnail,
		v.Duration, v.Views, v.PublishedTime, v.Description,
	))
}

// FindByVideoID returns the user's favorite for a video, or pgx.ErrNoRows.
func (r *FavoriteRepo) FindByVideoID(ctx context.Context, userID int64, videoID string) (*model.Favorite, error) {
	query := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1 AND video_id = $2`
	return scanFavorite(r.pool.QueryRow(ctx, query, userID, videoID))
}

// Exists reports whether the user has favorited the video.
func (r *FavoriteRepo) Exists(ctx context.Context, userID int64, videoID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND video_id = $2)`,
		userID, videoID).Scan(&exists)
	return exists, err
}

// DeleteByID removes a favorite owned by the user. Returns false when no
// row matched.
func (r *FavoriteRepo) DeleteByID(ctx context.Context, userID, favoriteID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE id = $1 AND user_id = $2`, favoriteID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByVideoID removes the user's favorite for a video. Returns false
// when no row matched.
func (r *FavoriteRepo) DeleteByVideoID(ctx context.Context, userID int64, videoID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND video_id = $2`, userID, videoID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
