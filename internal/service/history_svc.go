package service

import (
	"context"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/repository"
)

// DefaultHistoryLimit is used when a history listing omits the limit.
const DefaultHistoryLimit = 50

type HistoryService struct {
	repo *repository.HistoryRepo
}

func NewHistoryService(repo *repository.HistoryRepo) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns the user's history, most recently watched first.
func (s *HistoryService) List(ctx context.Context, userID int64, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return entries, nil
}

// Add records a watch. Re-watching refreshes the timestamp and progress
// instead of duplicating the entry.
func (s *HistoryService) Add(ctx context.Context, userID int64, v model.VideoPayload) (*model.HistoryEntry, error) {
	return s.repo.Upsert(ctx, userID, fillVideoDefaults(v))
}

// Remove deletes one history entry by its id.
func (s *HistoryService) Remove(ctx context.Context, userID, historyID int64) (bool, error) {
	return s.repo.DeleteByID(ctx, userID, historyID)
}

// Clear wipes the user's entire history and returns how many entries went.
func (s *HistoryService) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.repo.DeleteAll(ctx, userID)
}

// UpdateProgress stores the playback position of a video already in history.
func (s *HistoryService) UpdateProgress(ctx context.Context, userID int64, videoID string, progress float64) (bool, error) {
	return s.repo.UpdateProgress(ctx, userID, videoID, progress)
}
