package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a testify mock for repository.VideoRepository.
type MockVideoRepository struct {
	mock.Mock
}

// NewMockVideoRepository creates the mock and registers an expectation check.
func NewMockVideoRepository(t testingT) *MockVideoRepository {
	m := &MockVideoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, opts repository.VideoListOptions) (*entity.VideoPage, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.VideoPage), args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}
