package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vidtube/config"
	"vidtube/internal/delivery/http/response"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"
	"vidtube/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VideoHandler holds dependencies for video-related handlers.
type VideoHandler struct {
	uc     usecase.VideoUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase, cfg *config.Config, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// List handles the public video listing.
func (h *VideoHandler) List(c echo.Context) error {
	input := usecase.ListVideosInput{
		Page:     queryInt(c, "page", 0),
		Limit:    queryInt(c, "limit", 0),
		Query:    c.QueryParam("query"),
		SortBy:   c.QueryParam("sortBy"),
		SortType: c.QueryParam("sortType"),
	}

	if raw := c.QueryParam("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("userId must be a valid UUID")
		}
		input.OwnerID = &ownerID
	}

	page, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Videos retrieved successfully")
}

// Upload handles the video publish request (multipart form).
func (h *VideoHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoHeader, err := c.FormFile("videoFile")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("videoFile is required")
	}
	if !validation.IsVideoFile(videoHeader) {
		return domainerrors.ErrValidationFailed.WithDetails("videoFile must be a video file")
	}

	thumbHeader, err := c.FormFile("thumbnailFile")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("thumbnailFile is required")
	}
	if !validation.IsImageFile(thumbHeader) {
		return domainerrors.ErrValidationFailed.WithDetails("thumbnailFile must be an image file")
	}

	videoFile, err := spoolFormFile(videoHeader, h.cfg.Storage.TempDir)
	if err != nil {
		return errors.WithStack(err)
	}
	defer removeSpooled(videoFile)

	thumbnail, err := spoolFormFile(thumbHeader, h.cfg.Storage.TempDir)
	if err != nil {
		return errors.WithStack(err)
	}
	defer removeSpooled(thumbnail)

	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)

	video, err := h.uc.Upload(c.Request().Context(), usecase.UploadVideoInput{
		OwnerID:     user.ID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Duration:    duration,
		VideoFile:   *videoFile,
		Thumbnail:   *thumbnail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, video, "Video uploaded successfully")
}

// Get returns one video. A logged-in viewer counts a view and earns a
// watch-history entry.
func (h *VideoHandler) Get(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.Get(c.Request().Context(), videoID, viewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video retrieved successfully")
}

// Update applies metadata changes and an optional thumbnail replacement.
func (h *VideoHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	input := usecase.UpdateVideoInput{
		VideoID:     videoID,
		OwnerID:     user.ID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		if !validation.IsImageFile(thumbHeader) {
			return domainerrors.ErrValidationFailed.WithDetails("thumbnail must be an image file")
		}

		thumbnail, err := spoolFormFile(thumbHeader, h.cfg.Storage.TempDir)
		if err != nil {
			return errors.WithStack(err)
		}
		defer removeSpooled(thumbnail)
		input.Thumbnail = thumbnail
	}

	video, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video updated successfully")
}

// Delete removes a video and its media assets.
func (h *VideoHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), videoID, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the draft/published state.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.TogglePublish(c.Request().Context(), videoID, user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Publish state toggled successfully")
}
