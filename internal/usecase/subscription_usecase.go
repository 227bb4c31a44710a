package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the interface for subscription-related business operations.
type SubscriptionUsecase interface {
	// Toggle flips the (subscriber, channel) relationship. Subscribing to
	// your own channel is rejected.
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*ToggleResult, error)

	// ListSubscribers pages through a channel's subscribers.
	ListSubscribers(ctx context.Context, channelID uuid.UUID, page int) ([]*entity.Subscriber, error)

	// ListSubscribedChannels returns the channels a user follows.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.SubscribedChannel, error)
}
