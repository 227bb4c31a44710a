package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Find retrieves the subscription for the (subscriber, channel) pair, if any.
func (repo *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// Create persists a new subscription. The unique (subscriber, channel) index
// turns a concurrent duplicate insert into ErrDuplicateSubscription.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubscriptionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// Delete removes the subscription for the (subscriber, channel) pair.
func (repo *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// ListSubscribers returns one page of a channel's subscribers.
func (repo *subscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID, page, limit int) ([]*entity.Subscriber, error) {
	page, limit = normalizePagination(page, limit)

	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscriber").
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	subscribers := make([]*entity.Subscriber, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		row := &entity.Subscriber{
			SubscribedAt: subscriptionM.CreatedAt,
		}
		if subscriptionM.Subscriber != nil {
			row.Subscriber = entity.OwnerSummary{
				ID:       subscriptionM.Subscriber.ID,
				Username: subscriptionM.Subscriber.Username,
				Avatar:   subscriptionM.Subscriber.AvatarURL,
			}
		}
		subscribers = append(subscribers, row)
	}

	return subscribers, nil
}

// ListSubscribedChannels returns the channels a user subscribes to.
func (repo *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.SubscribedChannel, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	channels := make([]*entity.SubscribedChannel, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		row := &entity.SubscribedChannel{
			SubscribedAt: subscriptionM.CreatedAt,
		}
		if subscriptionM.Channel != nil {
			row.Channel = entity.OwnerSummary{
				ID:       subscriptionM.Channel.ID,
				Username: subscriptionM.Channel.Username,
				Avatar:   subscriptionM.Channel.AvatarURL,
			}
		}
		channels = append(channels, row)
	}

	return channels, nil
}

// CountSubscribers returns the channel's subscriber count.
func (repo *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscribers")
	}

	return count, nil
}

// CountSubscribedChannels returns how many channels the user subscribes to.
func (repo *subscriptionRepository) CountSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscribed channels")
	}

	return count, nil
}

// toSubscriptionDomain converts a GORM model to the domain entity.
func toSubscriptionDomain(subscriptionM *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:           subscriptionM.ID,
		SubscriberID: subscriptionM.SubscriberID,
		ChannelID:    subscriptionM.ChannelID,
		CreatedAt:    subscriptionM.CreatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to the GORM model.
func fromSubscriptionDomain(subscription *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:           subscription.ID,
		SubscriberID: subscription.SubscriberID,
		ChannelID:    subscription.ChannelID,
	}
}
