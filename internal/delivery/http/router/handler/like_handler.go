package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like-related handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleVideoLike flips the like on a video. 201 means the like was added,
// 200 means it was removed.
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	result, err := h.uc.ToggleVideoLike(c.Request().Context(), videoID, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, toggleStatus(result), result, "Video like toggled successfully")
}

// ToggleCommentLike flips the like on a comment.
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	result, err := h.uc.ToggleCommentLike(c.Request().Context(), commentID, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, toggleStatus(result), result, "Comment like toggled successfully")
}

// ToggleTweetLike flips the like on a tweet.
func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	result, err := h.uc.ToggleTweetLike(c.Request().Context(), tweetID, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, toggleStatus(result), result, "Tweet like toggled successfully")
}

// ListLikedVideos returns the videos the user has liked.
func (h *LikeHandler) ListLikedVideos(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	liked, err := h.uc.ListLikedVideos(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, liked, "Liked videos retrieved successfully")
}
