package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a testify mock for repository.SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

// NewMockSubscriptionRepository creates the mock and registers an expectation check.
func NewMockSubscriptionRepository(t testingT) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSubscriptionRepository) Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	return m.Called(ctx, subscription).Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	return m.Called(ctx, subscriberID, channelID).Error(0)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID, page, limit int) ([]*entity.Subscriber, error) {
	args := m.Called(ctx, channelID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Subscriber), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.SubscribedChannel, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SubscribedChannel), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, channelID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subscriberID)

	return args.Get(0).(int64), args.Error(1)
}
