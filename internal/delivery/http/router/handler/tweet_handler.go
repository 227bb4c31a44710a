package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TweetHandler holds dependencies for tweet-related handlers.
type TweetHandler struct {
	uc     usecase.TweetUsecase
	logger *slog.Logger
}

// NewTweetHandler is the constructor for TweetHandler, injected by Fx.
func NewTweetHandler(uc usecase.TweetUsecase, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{
		uc:     uc,
		logger: logger,
	}
}

// TweetRequest is the create/update tweet request body.
type TweetRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create posts a new tweet.
func (h *TweetHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req TweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	tweet, err := h.uc.Create(c.Request().Context(), user.ID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// ListByUser returns all tweets posted by a user.
func (h *TweetHandler) ListByUser(c echo.Context) error {
	ownerID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	tweets, err := h.uc.ListByUser(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tweets, "Tweets retrieved successfully")
}

// Update rewrites a tweet's content.
func (h *TweetHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	var req TweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	tweet, err := h.uc.Update(c.Request().Context(), tweetID, user.ID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// Delete removes a tweet.
func (h *TweetHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), tweetID, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tweet deleted successfully")
}
