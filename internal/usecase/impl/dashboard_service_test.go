package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardServiceMocks struct {
	videoRepo        *mockRepo.MockVideoRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	likeRepo         *mockRepo.MockLikeRepository
}

func newDashboardService(t *testing.T) (usecase.DashboardUsecase, *dashboardServiceMocks) {
	m := &dashboardServiceMocks{
		videoRepo:        mockRepo.NewMockVideoRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		likeRepo:         mockRepo.NewMockLikeRepository(t),
	}

	svc := NewDashboardService(DashboardServiceParams{
		VideoRepo:        m.videoRepo,
		SubscriptionRepo: m.subscriptionRepo,
		LikeRepo:         m.likeRepo,
		Logger:           newDiscardLogger(),
	})

	return svc, m
}

func TestDashboardService_ChannelStats(t *testing.T) {
	svc, m := newDashboardService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.videoRepo.On("CountByOwner", ctx, ownerID).Return(int64(12), nil)
	m.videoRepo.On("SumViewsByOwner", ctx, ownerID).Return(int64(3400), nil)
	m.subscriptionRepo.On("CountSubscribers", ctx, ownerID).Return(int64(56), nil)
	m.likeRepo.On("CountByVideoOwner", ctx, ownerID).Return(int64(78), nil)

	stats, err := svc.ChannelStats(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalVideos)
	assert.Equal(t, int64(3400), stats.TotalViews)
	assert.Equal(t, int64(56), stats.TotalSubscribers)
	assert.Equal(t, int64(78), stats.TotalLikes)
}

func TestDashboardService_ChannelVideos_IncludesDrafts(t *testing.T) {
	svc, m := newDashboardService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.videoRepo.On("List", ctx, mock.MatchedBy(func(opts repository.VideoListOptions) bool {
		return opts.IncludeUnpublished && opts.OwnerID != nil && *opts.OwnerID == ownerID
	})).Return(&entity.VideoPage{Page: 1, Limit: 10, TotalCount: 2}, nil)

	page, err := svc.ChannelVideos(ctx, ownerID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}
