package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/repository"
)

// ErrAlreadyFavorite reports a duplicate add for the same (user, video) pair.
var ErrAlreadyFavorite = errors.New("video already in favorites")

type FavoriteService struct {
	repo *repository.FavoriteRepo
}

func NewFavoriteService(repo *repository.FavoriteRepo) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// List returns the user's favorites, newest first.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]model.Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	return favorites, nil
}

// Add stores a new favorite, rejecting duplicates.
func (s *FavoriteService) Add(ctx context.Context, userID int64, v model.VideoPayload) (*model.Favorite, error) {
	exists, err := s.repo.Exists(ctx, userID, v.VideoID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}
	return s.repo.Insert(ctx, userID, fillVideoDefaults(v))
}

// Remove deletes a favorite by its id.
func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID int64) (bool, error) {
	return s.repo.DeleteByID(ctx, userID, favoriteID)
}

// IsFavorite reports whether the user has favorited the video.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID int64, videoID string) (bool, error) {
	return s.repo.Exists(ctx, userID, videoID)
}

// Toggle adds the video to favorites, or removes it if already present.
func (s *FavoriteService) Toggle(ctx context.Context, userID int64, v model.VideoPayload) (*model.ToggleResponse, error) {
	_, err := s.repo.FindByVideoID(ctx, userID, v.VideoID)
	switch {
	case err == nil:
		if _, err := s.repo.DeleteByVideoID(ctx, userID, v.VideoID); err != nil {
			return nil, err
		}
		return &model.ToggleResponse{Added: false, Message: "Removed from favorites"}, nil
	case errors.Is(err, pgx.ErrNoRows):
		favorite, err := s.repo.Insert(ctx, userID, fillVideoDefaults(v))
		if err != nil {
			return nil, err
		}
		return &model.ToggleResponse{Added: true, Favorite: favorite}, nil
	default:
		return nil, err
	}
}

// fillVideoDefaults applies the same display defaults the original clients
// rely on when a search result snapshot is incomplete.
func fillVideoDefaults(v model.VideoPayload) model.VideoPayload {
	if v.ChannelThumbnail == "" {
		v.ChannelThumbnail = "https://yt3.ggpht.com/a/default-user=s28-c-k-c0x00ffffff-no-rj"
	}
	if v.Duration == "" {
		v.Duration = "0:00"
	}
	if v.Views == "" {
		v.Views = "0 views"
	}
	if v.PublishedTime == "" {
		v.PublishedTime = "Unknown"
	}
	return v
}
