// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUser returns the authenticated account set by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetCurrentUser(c)
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// viewerID returns the authenticated account's id, or nil for anonymous
// requests on optionally-authenticated routes.
func viewerID(c echo.Context) *uuid.UUID {
	user := deliverycontext.GetCurrentUser(c)
	if user == nil {
		return nil
	}

	return &user.ID
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// queryInt parses an integer query parameter, falling back when absent or
// malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// spoolFormFile copies a request file to the local temp directory so the
// usecase can stream it to the media host. The media storage removes the
// temp file once the upload settles, success or not.
func spoolFormFile(fileHeader *multipart.FileHeader, tempDir string) (*usecase.FileUpload, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	dst, err := os.CreateTemp(tempDir, "upload-*"+ext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())

		return nil, errors.Wrap(err, "failed to spool uploaded file")
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())

		return nil, errors.Wrap(err, "failed to flush uploaded file")
	}

	return &usecase.FileUpload{
		Path:        dst.Name(),
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// removeSpooled drops spooled temp files that never reached the media host,
// so a request rejected after spooling leaves nothing behind. The media
// storage removes the file itself once an upload is attempted, which makes
// the remove here a no-op on that path.
func removeSpooled(uploads ...*usecase.FileUpload) {
	for _, upload := range uploads {
		if upload == nil || upload.Path == "" {
			continue
		}
		_ = os.Remove(upload.Path)
	}
}

// toggleStatus maps a toggle outcome to its status code: 201 when the
// relationship was created, 200 when it was removed.
func toggleStatus(result *usecase.ToggleResult) int {
	if result.Added {
		return http.StatusCreated
	}

	return http.StatusOK
}
