package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription-related handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle flips the subscription to a channel. 201 means subscribed, 200
// means unsubscribed.
func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	result, err := h.uc.Toggle(c.Request().Context(), user.ID, channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, toggleStatus(result), result, "Subscription toggled successfully")
}

// ListSubscribers pages through a channel's subscribers.
func (h *SubscriptionHandler) ListSubscribers(c echo.Context) error {
	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	subscribers, err := h.uc.ListSubscribers(c.Request().Context(), channelID, queryInt(c, "page", 1))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscribers, "Subscribers retrieved successfully")
}

// ListSubscribedChannels returns the channels the user follows.
func (h *SubscriptionHandler) ListSubscribedChannels(c echo.Context) error {
	subscriberID, err := pathUUID(c, "subscriberId")
	if err != nil {
		return err
	}

	channels, err := h.uc.ListSubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, channels, "Subscribed channels retrieved successfully")
}
