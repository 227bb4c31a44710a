package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Channel subscriber listings use a fixed page size.
const subscriberPageSize = 20

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

// Toggle flips the (subscriber, channel) relationship. Subscribing to your
// own channel is rejected; the unique index turns a lost race into CONFLICT.
func (srv *subscriptionService) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*usecase.ToggleResult, error) {
	if subscriberID == channelID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot subscribe to your own channel")
	}

	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrChannelNotFound
		}

		return nil, errors.Wrap(err, "failed to load channel")
	}

	_, err := srv.subscriptionRepo.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := srv.subscriptionRepo.Delete(ctx, subscriberID, channelID); err != nil &&
			!errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, errors.Wrap(err, "failed to remove subscription")
		}

		return &usecase.ToggleResult{Added: false}, nil

	case errors.Is(err, repository.ErrSubscriptionNotFound):
		subscription := &entity.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}

		if err := srv.subscriptionRepo.Create(ctx, subscription); err != nil {
			if errors.Is(err, repository.ErrDuplicateSubscription) {
				return nil, domainerrors.ErrConflict.WrapMessage("subscription already exists")
			}

			return nil, errors.Wrap(err, "failed to create subscription")
		}

		return &usecase.ToggleResult{Added: true}, nil

	default:
		return nil, errors.Wrap(err, "failed to check existing subscription")
	}
}

// ListSubscribers pages through a channel's subscribers, 20 per page.
func (srv *subscriptionService) ListSubscribers(ctx context.Context, channelID uuid.UUID, page int) ([]*entity.Subscriber, error) {
	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrChannelNotFound
		}

		return nil, errors.Wrap(err, "failed to load channel")
	}

	subscribers, err := srv.subscriptionRepo.ListSubscribers(ctx, channelID, page, subscriberPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subscribers, nil
}

// ListSubscribedChannels returns the channels the user follows.
func (srv *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.SubscribedChannel, error) {
	channels, err := srv.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	return channels, nil
}
