package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	VideoRepo        repository.VideoRepository
	SubscriptionRepo repository.SubscriptionRepository
	LikeRepo         repository.LikeRepository
	Logger           *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		videoRepo:        params.VideoRepo,
		subscriptionRepo: params.SubscriptionRepo,
		likeRepo:         params.LikeRepo,
		logger:           params.Logger,
	}
}

// ChannelStats aggregates the channel's headline numbers.
func (srv *dashboardService) ChannelStats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	totalVideos, err := srv.videoRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel videos")
	}

	totalViews, err := srv.videoRepo.SumViewsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum channel views")
	}

	totalSubscribers, err := srv.subscriptionRepo.CountSubscribers(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel subscribers")
	}

	totalLikes, err := srv.likeRepo.CountByVideoOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel likes")
	}

	return &entity.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// ChannelVideos lists the channel's own videos, drafts included.
func (srv *dashboardService) ChannelVideos(ctx context.Context, ownerID uuid.UUID, page, limit int) (*entity.VideoPage, error) {
	videos, err := srv.videoRepo.List(ctx, repository.VideoListOptions{
		Page:               page,
		Limit:              limit,
		OwnerID:            &ownerID,
		SortDesc:           true,
		IncludeUnpublished: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel videos")
	}

	return videos, nil
}
