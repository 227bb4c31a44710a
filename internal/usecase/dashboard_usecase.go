package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase defines the interface for channel dashboard operations.
type DashboardUsecase interface {
	// ChannelStats aggregates the channel's headline numbers.
	ChannelStats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error)

	// ChannelVideos lists the channel's own videos, drafts included.
	ChannelVideos(ctx context.Context, ownerID uuid.UUID, page, limit int) (*entity.VideoPage, error)
}
