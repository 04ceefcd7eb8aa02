package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/repository"
)

// DefaultCommentPageSize is used when a paginated listing omits the limit.
const DefaultCommentPageSize = 20

type CommentService struct {
	repo  *repository.CommentRepo
	cache *CacheService
}

func NewCommentService(repo *repository.CommentRepo, cache *CacheService) *CommentService {
	return &CommentService{repo: repo, cache: cache}
}

// ListAll returns every feedback comment, newest first.
func (s *CommentService) ListAll(ctx context.Context) ([]model.Comment, error) {
	comments, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

// ListPage returns one page of feedback comments with pagination metadata.
// Pages are served cache-aside: check Redis first, fall back to the
// database, then populate the cache.
func (s *CommentService) ListPage(ctx context.Context, page, limit int) (*model.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultCommentPageSize
	}

	if s.cache != nil {
		cached, err := s.cache.GetCommentPage(ctx, page, limit)
		if err != nil {
			log.Printf("cache: comment page get error: %v", err)
		} else if cached != nil {
			var result model.CommentPage
			if err := json.Unmarshal(cached, &result); err == nil {
				return &result, nil
			}
		}
	}

	offset := (page - 1) * limit
	comments, err := s.repo.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	totalCount, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (totalCount + limit - 1) / limit
	result := &model.CommentPage{
		Comments: comments,
		Pagination: model.Pagination{
			TotalCount:  totalCount,
			CurrentPage: page,
			TotalPages:  totalPages,
			HasMore:     offset+len(comments) < totalCount,
		},
	}

	if s.cache != nil {
		if err := s.cache.SetCommentPage(ctx, page, limit, result); err != nil {
			log.Printf("cache: comment page set error: %v", err)
		}
	}

	return result, nil
}

// Count returns the total number of feedback comments.
func (s *CommentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Add stores a new comment and invalidates the cached pages. userID and
// userEmail are nil for anonymous submissions.
func (s *CommentService) Add(ctx context.Context, userID *int64, userName string, userEmail *string, body string) (*model.Comment, error) {
	comment, err := s.repo.Insert(ctx, userID, userName, userEmail, body)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return comment, nil
}

// Update replaces the body of a comment owned by the user.
func (s *CommentService) Update(ctx context.Context, commentID, userID int64, body string) (*model.Comment, error) {
	comment, err := s.repo.Update(ctx, commentID, userID, body)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return comment, nil
}

// Delete removes a comment owned by the user.
func (s *CommentService) Delete(ctx context.Context, commentID, userID int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, commentID, userID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidate(ctx)
	}
	return deleted, nil
}

// ListByUser returns the comments authored by one user.
func (s *CommentService) ListByUser(ctx context.Context, userID int64) ([]model.Comment, error) {
	comments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

func (s *CommentService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateComments(ctx); err != nil {
		log.Printf("cache: comment invalidate error: %v", err)
	}
}
