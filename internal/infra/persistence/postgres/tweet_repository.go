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

// tweetRepository implements the repository.TweetRepository interface.
type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{
		db: db,
	}
}

// FindByID retrieves a single tweet by its unique ID.
func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tweetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by ID")
	}

	return toTweetDomain(&tweetM), nil
}

// ListByOwner returns all tweets posted by a user, newest first.
func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	var tweetModels []*model.TweetModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tweets by owner")
	}

	tweets := make([]*entity.Tweet, 0, len(tweetModels))
	for _, tweetM := range tweetModels {
		tweets = append(tweets, toTweetDomain(tweetM))
	}

	return tweets, nil
}

// Create persists a new tweet.
func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := &model.TweetModel{
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}

	if err := repo.db.WithContext(ctx).Create(tweetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	// Update the entity with generated values
	tweet.ID = tweetM.ID
	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

// Update modifies an existing tweet's content.
func (repo *tweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TweetModel{}).
		Where("id = ?", tweet.ID).
		Update("content", tweet.Content)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update tweet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// Delete removes a tweet.
func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TweetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tweet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// toTweetDomain converts a GORM model to the domain entity.
func toTweetDomain(tweetM *model.TweetModel) *entity.Tweet {
	return &entity.Tweet{
		ID:        tweetM.ID,
		OwnerID:   tweetM.OwnerID,
		Content:   tweetM.Content,
		CreatedAt: tweetM.CreatedAt,
		UpdatedAt: tweetM.UpdatedAt,
	}
}
