package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when no subscription exists for the pair.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when the unique (subscriber, channel)
	// constraint rejects a concurrent duplicate insert.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the standard operations for subscription persistence.
type SubscriptionRepository interface {
	// Find retrieves the subscription for the (subscriber, channel) pair, if any.
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error)

	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes the subscription for the (subscriber, channel) pair.
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error

	// ListSubscribers returns one page of a channel's subscribers with the
	// subscriber projection joined and flattened.
	ListSubscribers(ctx context.Context, channelID uuid.UUID, page, limit int) ([]*entity.Subscriber, error)

	// ListSubscribedChannels returns the channels a user subscribes to.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.SubscribedChannel, error)

	// CountSubscribers returns the channel's subscriber count.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)

	// CountSubscribedChannels returns how many channels the user subscribes to.
	CountSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) (int64, error)
}
