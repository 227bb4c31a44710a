// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PlaylistHandler     *handler.PlaylistHandler
	TweetHandler        *handler.TweetHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	api := e.Group("/api/v1")

	// Health check endpoint
	api.GET("/healthcheck", handler.HealthCheck)

	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.UserHandler.Login)
		userGroup.GET("/refresh-token", r.params.UserHandler.RefreshToken)

		userGroup.POST("/logout", r.params.UserHandler.Logout, auth.Authenticate)
		userGroup.POST("/change-password", r.params.UserHandler.ChangePassword, auth.Authenticate)
		userGroup.GET("/current-user", r.params.UserHandler.CurrentUser, auth.Authenticate)
		userGroup.PATCH("/update-account", r.params.UserHandler.UpdateProfile, auth.Authenticate)
		userGroup.PATCH("/avatar", r.params.UserHandler.UpdateAvatar, auth.Authenticate)
		userGroup.PATCH("/cover-image", r.params.UserHandler.UpdateCoverImage, auth.Authenticate)
		userGroup.GET("/channel/:username", r.params.UserHandler.ChannelProfile, auth.OptionalAuthenticate)
	}

	videoGroup := api.Group("/videos")
	{
		videoGroup.GET("", r.params.VideoHandler.List)
		videoGroup.POST("/upload", r.params.VideoHandler.Upload, auth.Authenticate)
		videoGroup.GET("/:videoId", r.params.VideoHandler.Get, auth.Authenticate)
		videoGroup.PATCH("/:videoId", r.params.VideoHandler.Update, auth.Authenticate)
		videoGroup.DELETE("/:videoId", r.params.VideoHandler.Delete, auth.Authenticate)
		videoGroup.PATCH("/toggle/publish/:videoId", r.params.VideoHandler.TogglePublish, auth.Authenticate)
	}

	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("/:videoId", r.params.CommentHandler.ListByVideo)
		commentGroup.POST("/:videoId", r.params.CommentHandler.Add, auth.Authenticate)
		commentGroup.PATCH("/c/:commentId", r.params.CommentHandler.Update, auth.Authenticate)
		commentGroup.DELETE("/c/:commentId", r.params.CommentHandler.Delete, auth.Authenticate)
	}

	likeGroup := api.Group("/likes", auth.Authenticate)
	{
		likeGroup.POST("/toggle/v/:videoId", r.params.LikeHandler.ToggleVideoLike)
		likeGroup.POST("/toggle/c/:commentId", r.params.LikeHandler.ToggleCommentLike)
		likeGroup.POST("/toggle/t/:tweetId", r.params.LikeHandler.ToggleTweetLike)
		likeGroup.GET("/videos", r.params.LikeHandler.ListLikedVideos)
	}

	subscriptionGroup := api.Group("/subscriptions")
	{
		subscriptionGroup.POST("/c/:channelId", r.params.SubscriptionHandler.Toggle, auth.Authenticate)
		subscriptionGroup.GET("/c/:channelId", r.params.SubscriptionHandler.ListSubscribers)
		subscriptionGroup.GET("/u/:subscriberId", r.params.SubscriptionHandler.ListSubscribedChannels)
	}

	playlistGroup := api.Group("/playlist")
	{
		playlistGroup.POST("", r.params.PlaylistHandler.Create, auth.Authenticate)
		playlistGroup.GET("/user/:userId", r.params.PlaylistHandler.ListByUser)
		playlistGroup.GET("/:playlistId", r.params.PlaylistHandler.Get)
		playlistGroup.PATCH("/:playlistId", r.params.PlaylistHandler.Rename, auth.Authenticate)
		playlistGroup.DELETE("/:playlistId", r.params.PlaylistHandler.Delete, auth.Authenticate)
		playlistGroup.PATCH("/add/:videoId/:playlistId", r.params.PlaylistHandler.AddVideo, auth.Authenticate)
		playlistGroup.PATCH("/remove/:videoId/:playlistId", r.params.PlaylistHandler.RemoveVideo, auth.Authenticate)
	}

	tweetGroup := api.Group("/tweets")
	{
		tweetGroup.POST("", r.params.TweetHandler.Create, auth.Authenticate)
		tweetGroup.GET("/user/:userId", r.params.TweetHandler.ListByUser)
		tweetGroup.PATCH("/:tweetId", r.params.TweetHandler.Update, auth.Authenticate)
		tweetGroup.DELETE("/:tweetId", r.params.TweetHandler.Delete, auth.Authenticate)
	}

	dashboardGroup := api.Group("/dashboard", auth.Authenticate)
	{
		dashboardGroup.GET("/stats", r.params.DashboardHandler.Stats)
		dashboardGroup.GET("/videos", r.params.DashboardHandler.Videos)
	}
}
