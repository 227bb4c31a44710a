package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vidtube/internal/delivery/context"
	deliverymiddleware "vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLikeUsecase returns canned toggle results for handler tests.
type stubLikeUsecase struct {
	result *usecase.ToggleResult
	err    error
}

func (s *stubLikeUsecase) ToggleVideoLike(ctx context.Context, videoID, ownerID uuid.UUID) (*usecase.ToggleResult, error) {
	return s.result, s.err
}

func (s *stubLikeUsecase) ToggleCommentLike(ctx context.Context, commentID, ownerID uuid.UUID) (*usecase.ToggleResult, error) {
	return s.result, s.err
}

func (s *stubLikeUsecase) ToggleTweetLike(ctx context.Context, tweetID, ownerID uuid.UUID) (*usecase.ToggleResult, error) {
	return s.result, s.err
}

func (s *stubLikeUsecase) ListLikedVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.LikedVideo, error) {
	return nil, s.err
}

func newLikeTestContext(t *testing.T, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("videoId")
	c.SetParamValues(uuid.NewString())

	if authenticated {
		deliverycontext.SetCurrentUser(c, &entity.User{ID: uuid.New(), Username: "janedoe"})
	}

	return c, rec
}

func TestLikeHandler_ToggleVideoLike_AddedIsCreated(t *testing.T) {
	handler := NewLikeHandler(&stubLikeUsecase{result: &usecase.ToggleResult{Added: true}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newLikeTestContext(t, true)
	require.NoError(t, handler.ToggleVideoLike(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestLikeHandler_ToggleVideoLike_RemovedIsOK(t *testing.T) {
	handler := NewLikeHandler(&stubLikeUsecase{result: &usecase.ToggleResult{Added: false}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newLikeTestContext(t, true)
	require.NoError(t, handler.ToggleVideoLike(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLikeHandler_ToggleVideoLike_UnauthenticatedEnvelope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewLikeHandler(&stubLikeUsecase{}, logger)

	c, rec := newLikeTestContext(t, false)
	err := handler.ToggleVideoLike(c)
	require.Error(t, err)

	// The error middleware turns the failure into the envelope.
	deliverymiddleware.NewErrorMiddleware(logger).HandleHTTPError(err, c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}
