package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVideoUsecase records the upload input and returns canned results.
type stubVideoUsecase struct {
	video    *entity.Video
	err      error
	uploaded *usecase.UploadVideoInput
}

func (s *stubVideoUsecase) List(ctx context.Context, input usecase.ListVideosInput) (*entity.VideoPage, error) {
	return nil, s.err
}

func (s *stubVideoUsecase) Upload(ctx context.Context, input usecase.UploadVideoInput) (*entity.Video, error) {
	s.uploaded = &input
	if s.err != nil {
		return nil, s.err
	}

	return s.video, nil
}

func (s *stubVideoUsecase) Get(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error) {
	return s.video, s.err
}

func (s *stubVideoUsecase) Update(ctx context.Context, input usecase.UpdateVideoInput) (*entity.Video, error) {
	return s.video, s.err
}

func (s *stubVideoUsecase) Delete(ctx context.Context, videoID, ownerID uuid.UUID) error {
	return s.err
}

func (s *stubVideoUsecase) TogglePublish(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error) {
	return s.video, s.err
}

func multipartFilePart(t *testing.T, writer *multipart.Writer, field, filename, contentType string) {
	t.Helper()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("payload"))
	require.NoError(t, err)
}

func newVideoUploadContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "My clip"))
	require.NoError(t, writer.WriteField("description", "A short clip"))
	require.NoError(t, writer.WriteField("duration", "12.5"))
	multipartFilePart(t, writer, "videoFile", "clip.mp4", "video/mp4")
	multipartFilePart(t, writer, "thumbnailFile", "thumb.png", "image/png")
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New(), Username: "janedoe"})

	return c, rec
}

func newVideoHandler(uc usecase.VideoUsecase, tempDir string) *VideoHandler {
	cfg := &config.Config{}
	cfg.Storage.TempDir = tempDir

	return NewVideoHandler(uc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVideoHandler_Upload_ReadsMultipartFields(t *testing.T) {
	stub := &stubVideoUsecase{video: &entity.Video{ID: uuid.New(), Title: "My clip"}}
	handler := newVideoHandler(stub, t.TempDir())

	c, rec := newVideoUploadContext(t)
	require.NoError(t, handler.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, stub.uploaded)
	assert.Equal(t, "My clip", stub.uploaded.Title)
	assert.Equal(t, 12.5, stub.uploaded.Duration)
	assert.Equal(t, "video/mp4", stub.uploaded.VideoFile.ContentType)
	assert.Equal(t, "image/png", stub.uploaded.Thumbnail.ContentType)
}

func TestVideoHandler_Upload_MissingThumbnailFileField(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "My clip"))
	multipartFilePart(t, writer, "videoFile", "clip.mp4", "video/mp4")
	multipartFilePart(t, writer, "thumbnail", "thumb.png", "image/png")
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	c := e.NewContext(req, httptest.NewRecorder())
	deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New(), Username: "janedoe"})

	handler := newVideoHandler(&stubVideoUsecase{}, t.TempDir())

	err := handler.Upload(c)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "thumbnailFile")
}

func TestVideoHandler_Upload_RejectedInputLeavesNoSpooledFiles(t *testing.T) {
	tempDir := t.TempDir()
	stub := &stubVideoUsecase{err: domainerrors.ErrValidationFailed.WithDetails("title is required")}
	handler := newVideoHandler(stub, tempDir)

	c, _ := newVideoUploadContext(t)
	require.Error(t, handler.Upload(c))

	// Both spooled files are gone once the request settles.
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
