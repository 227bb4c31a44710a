package main

import (
	"context"
	"log/slog"
	"os"

	"vidtube/config"
	"vidtube/internal/delivery"
	"vidtube/internal/delivery/http"
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/router/handler"
	"vidtube/internal/infra/auth"
	logs "vidtube/internal/infra/log"
	"vidtube/internal/infra/persistence/postgres"
	"vidtube/internal/infra/storage"
	"vidtube/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVideoRepository,
			postgres.NewCommentRepository,
			postgres.NewLikeRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewPlaylistRepository,
			postgres.NewTweetRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewVideoService,
			impl.NewCommentService,
			impl.NewLikeService,
			impl.NewSubscriptionService,
			impl.NewPlaylistService,
			impl.NewTweetService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVideoHandler,
			handler.NewCommentHandler,
			handler.NewLikeHandler,
			handler.NewSubscriptionHandler,
			handler.NewPlaylistHandler,
			handler.NewTweetHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
