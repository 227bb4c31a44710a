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

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// targetColumn maps a like target to its column name.
func targetColumn(target entity.LikeTarget) string {
	switch target {
	case entity.LikeTargetComment:
		return "comment_id"
	case entity.LikeTargetTweet:
		return "tweet_id"
	default:
		return "video_id"
	}
}

// Find retrieves the like for the (owner, target) pair, if any.
func (repo *likeRepository) Find(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) (*entity.Like, error) {
	var likeM model.LikeModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND "+targetColumn(target)+" = ?", ownerID, targetID).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// Create persists a new like. The partial unique index on the (owner, target)
// pair turns a concurrent duplicate insert into ErrDuplicateLike.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return likeTargetNotFound(like)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	// Update the entity with generated values
	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// likeTargetNotFound maps a foreign-key failure on like insert to the
// sentinel of the referenced target, not the like itself.
func likeTargetNotFound(like *entity.Like) error {
	switch {
	case like.CommentID != nil:
		return repository.ErrCommentNotFound
	case like.TweetID != nil:
		return repository.ErrTweetNotFound
	default:
		return repository.ErrVideoNotFound
	}
}

// Delete removes the like for the (owner, target) pair.
func (repo *likeRepository) Delete(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ? AND "+targetColumn(target)+" = ?", ownerID, targetID).
		Delete(&model.LikeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete like")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// ListLikedVideos returns the videos the owner has liked, newest like first.
func (repo *likeRepository) ListLikedVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.LikedVideo, error) {
	var likeModels []*model.LikeModel

	if err := repo.db.WithContext(ctx).
		Preload("Video").
		Where("owner_id = ? AND video_id IS NOT NULL", ownerID).
		Order("created_at DESC").
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	liked := make([]*entity.LikedVideo, 0, len(likeModels))
	for _, likeM := range likeModels {
		if likeM.Video == nil {
			continue
		}
		liked = append(liked, &entity.LikedVideo{
			LikeID: likeM.ID,
			Video:  toVideoDomain(likeM.Video),
		})
	}

	return liked, nil
}

// CountByVideoOwner counts likes received across all of a channel's videos.
func (repo *likeRepository) CountByVideoOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes by video owner")
	}

	return count, nil
}

// toLikeDomain converts a GORM model to the domain entity.
func toLikeDomain(likeM *model.LikeModel) *entity.Like {
	return &entity.Like{
		ID:        likeM.ID,
		OwnerID:   likeM.OwnerID,
		VideoID:   likeM.VideoID,
		CommentID: likeM.CommentID,
		TweetID:   likeM.TweetID,
		CreatedAt: likeM.CreatedAt,
	}
}

// fromLikeDomain converts a domain entity to the GORM model.
func fromLikeDomain(like *entity.Like) *model.LikeModel {
	return &model.LikeModel{
		ID:        like.ID,
		OwnerID:   like.OwnerID,
		VideoID:   like.VideoID,
		CommentID: like.CommentID,
		TweetID:   like.TweetID,
	}
}
