package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTweetRepository is a testify mock for repository.TweetRepository.
type MockTweetRepository struct {
	mock.Mock
}

// NewMockTweetRepository creates the mock and registers an expectation check.
func NewMockTweetRepository(t testingT) *MockTweetRepository {
	m := &MockTweetRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
