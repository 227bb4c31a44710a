package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLikeRepository is a testify mock for repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

// NewMockLikeRepository creates the mock and registers an expectation check.
func NewMockLikeRepository(t testingT) *MockLikeRepository {
	m := &MockLikeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLikeRepository) Find(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) (*entity.Like, error) {
	args := m.Called(ctx, ownerID, targetID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) error {
	return m.Called(ctx, ownerID, targetID, target).Error(0)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.LikedVideo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.LikedVideo), args.Error(1)
}

func (m *MockLikeRepository) CountByVideoOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}
