package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/config"
	deliverymiddleware "vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	e := echo.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:         handler.NewUserHandler(nil, nil, cfg, logger),
		VideoHandler:        handler.NewVideoHandler(nil, cfg, logger),
		CommentHandler:      handler.NewCommentHandler(nil, logger),
		LikeHandler:         handler.NewLikeHandler(nil, logger),
		SubscriptionHandler: handler.NewSubscriptionHandler(nil, logger),
		PlaylistHandler:     handler.NewPlaylistHandler(nil, logger),
		TweetHandler:        handler.NewTweetHandler(nil, logger),
		DashboardHandler:    handler.NewDashboardHandler(nil, logger),
		AuthMiddleware:      deliverymiddleware.NewAuthMiddleware(nil, nil),
	}).RegisterRoutes(e)

	return e
}

func registeredRoutes(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool, len(e.Routes()))
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRegisterRoutes_Surface(t *testing.T) {
	routes := registeredRoutes(newTestEcho(t))

	// Session refresh is a GET, upload lives under its own path.
	assert.True(t, routes["GET /api/v1/users/refresh-token"])
	assert.True(t, routes["POST /api/v1/videos/upload"])
	assert.True(t, routes["GET /api/v1/videos/:videoId"])
	assert.True(t, routes["GET /api/v1/videos"])
	assert.True(t, routes["GET /api/v1/healthcheck"])

	assert.False(t, routes["POST /api/v1/users/refresh-token"])
	assert.False(t, routes["POST /api/v1/videos"])
}

func TestRegisterRoutes_VideoGetRequiresAuth(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/3f0e9a44-8f4f-4a8b-9a37-2f2cf1b4a111", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
