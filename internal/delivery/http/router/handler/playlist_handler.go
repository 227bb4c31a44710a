package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaylistHandler holds dependencies for playlist-related handlers.
type PlaylistHandler struct {
	uc     usecase.PlaylistUsecase
	logger *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaylistRequest is the create/rename playlist request body.
type PlaylistRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create makes a new empty playlist.
func (h *PlaylistHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PlaylistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	playlist, err := h.uc.Create(c.Request().Context(), user.ID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// ListByUser returns all of a user's playlists.
func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	ownerID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.uc.ListByUser(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlists, "Playlists retrieved successfully")
}

// Get returns one playlist with its ordered video ids.
func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.Get(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist retrieved successfully")
}

// Rename updates the playlist name.
func (h *PlaylistHandler) Rename(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	var req PlaylistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	playlist, err := h.uc.Rename(c.Request().Context(), playlistID, user.ID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist renamed successfully")
}

// Delete removes a playlist.
func (h *PlaylistHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), playlistID, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideo appends a video to the playlist.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.AddVideo(c.Request().Context(), playlistID, videoID, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Video added to playlist successfully")
}

// RemoveVideo drops a video from the playlist.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.RemoveVideo(c.Request().Context(), playlistID, videoID, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Video removed from playlist successfully")
}
