package model

import "time"

// Comment is an app feedback comment. UserID and UserEmail are nil for
// anonymous submissions.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail *string   `json:"userEmail,omitempty"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentCreateRequest is the API request body for POST /api/comments.
type CommentCreateRequest struct {
	UserName string `json:"userName"`
	Comment  string `json:"comment"`
}

// CommentUpdateRequest is the API request body for PUT /api/comments/:commentId.
type CommentUpdateRequest struct {
	Comment string `json:"comment"`
}

// CommentPage is the paginated API response for GET /api/comments.
type CommentPage struct {
	Comments   []Comment  `json:"comments"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the position of a page within the full comment list.
type Pagination struct {
	TotalCount  int  `json:"totalCount"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
}
