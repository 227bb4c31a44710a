package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CommentRequest is the add/update comment request body.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListByVideo pages through a video's comments.
func (h *CommentHandler) ListByVideo(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	comments, err := h.uc.ListByVideo(c.Request().Context(), videoID,
		queryInt(c, "page", 0), queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}

// Add attaches a new comment to a video.
func (h *CommentHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.Add(c.Request().Context(), videoID, user.ID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// Update rewrites a comment's content.
func (h *CommentHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.Update(c.Request().Context(), commentID, user.ID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), commentID, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
