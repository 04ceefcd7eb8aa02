package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/Michelle21160775/yt-geo-project/internal/middleware"
	"github.com/Michelle21160775/yt-geo-project/internal/model"
	"github.com/Michelle21160775/yt-geo-project/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /api/comments. Without page/limit it returns the full
// list; with either present it returns a paginated envelope.
func (h *CommentHandler) List(c fiber.Ctx) error {
	page := fiber.Query[int](c, "page")
	limit := fiber.Query[int](c, "limit")

	if page == 0 && limit == 0 {
		comments, err := h.svc.ListAll(c.Context())
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load comments")
		}
		return c.JSON(comments)
	}

	result, err := h.svc.ListPage(c.Context(), page, limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load comments")
	}
	return c.JSON(result)
}

// Count handles GET /api/comments/count.
func (h *CommentHandler) Count(c fiber.Ctx) error {
	count, err := h.svc.Count(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to count comments")
	}
	return c.JSON(fiber.Map{"count": count})
}

// Create handles POST /api/comments. Auth is optional; authenticated
// submissions carry the user's id and email.
func (h *CommentHandler) Create(c fiber.Ctx) error {
	var req model.CommentCreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	body, errMsg := middleware.ValidateComment(req.Comment)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_COMMENT", errMsg)
	}
	userName := middleware.ValidateUserName(req.UserName)

	var userID *int64
	var userEmail *string
	if uid, ok := middleware.UserID(c); ok {
		userID = &uid
		if email, ok := middleware.UserEmail(c); ok {
			userEmail = &email
		}
	}

	comment, err := h.svc.Add(c.Context(), userID, userName, userEmail, body)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save comment")
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Update handles PUT /api/comments/:commentId. Only the author may edit;
// someone else's comment looks like a missing one.
func (h *CommentHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	commentID, err := strconv.ParseInt(c.Params("commentId"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "commentId must be a number")
	}

	var req model.CommentUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}
	body, errMsg := middleware.ValidateComment(req.Comment)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_COMMENT", errMsg)
	}

	comment, err := h.svc.Update(c.Context(), commentID, userID, body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Comment not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update comment")
	}
	return c.JSON(comment)
}

// Delete handles DELETE /api/comments/:commentId (owner only).
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	commentID, err := strconv.ParseInt(c.Params("commentId"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "commentId must be a number")
	}

	deleted, err := h.svc.Delete(c.Context(), commentID, userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete comment")
	}
	if !deleted {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Comment not found")
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// ListMine handles GET /api/comments/user/me.
func (h *CommentHandler) ListMine(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	}

	comments, err := h.svc.ListByUser(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load comments")
	}
	return c.JSON(comments)
}
