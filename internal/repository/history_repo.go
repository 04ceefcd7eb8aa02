package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
)

type HistoryRepo struct {
	pool *pgxpool.Pool
}

func NewHistoryRepo(pool *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

const historyColumns = `id, user_id, video_id, title, thumbnail, channel, channel_thumbnail,
       duration, views, published_time, description, watch_progress, watched_at`

func scanHistory(row pgx.Row) (*model.HistoryEntry, error) {
	var h model.HistoryEntry
	err := row.Scan(
		&h.ID, &h.UserID, &h.VideoID, &h.Title, &h.Thumbnail, &h.Channel, &h.ChannelThumbnail,
		&h.Duration, &h.Views, &h.PublishedTime, &h.Description, &h.WatchProgress, &h.WatchedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListByUser returns the user's most recently watched entries.
func (r *HistoryRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]model.HistoryEntry, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM history
		WHERE user_id = $1
		ORDER BY watched_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *h)
	}
	return entries, rows.Err()
}

// Upsert inserts a history entry, or refreshes watched_at and progress
// when the user already watched the video.
func (r *HistoryRepo) Upsert(ctx context.Context, userID int64, v model.VideoPayload) (*model.HistoryEntry, error) {
	query := `
		INSERT INTO history (user_id, video_id, title, thumbnail, channel, channel_thumbnail,
		                     duration, views, published_time, description, watch_progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, video_id) DO UPDATE
		SET watch_progress = EXCLUDED.watch_progress,
		    watched_at     = now()
		RETURNING ` + historyColumns
	return scanHistory(r.pool.QueryRow(ctx, query,
		userID, v.VideoID, v.Title, v.Thumbnail, v.Channel, v.ChannelThumbnail,
		v.Duration, v.Views, v.PublishedTime, v.Description, v.WatchProgress,
	))
}

// DeleteByID removes one history entry owned by the user. Returns false
// when no row matched.
func (r *HistoryRepo) DeleteByID(ctx context.Context, userID, historyID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM history WHERE id = $1 AND user_id = $2`, historyID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll clears the user's history and returns the number of removed rows.
func (r *HistoryRepo) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateProgress stores the watch progress for a video already in history.
// Returns false when the video is not in the user's history.
func (r *HistoryRepo) UpdateProgress(ctx context.Context, userID int64, videoID string, progress float64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE history
		SET watch_progress = $3, watched_at = now()
		WHERE user_id = $1 AND video_id = $2`, userID, videoID, progress)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
