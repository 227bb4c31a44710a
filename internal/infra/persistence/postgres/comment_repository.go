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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

// ListByVideo returns one page of a video's comments, newest first, with the
// owner projection preloaded.
func (repo *commentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.CommentWithOwner, error) {
	page, limit = normalizePagination(page, limit)

	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by video")
	}

	comments := make([]*entity.CommentWithOwner, 0, len(commentModels))
	for _, commentM := range commentModels {
		row := &entity.CommentWithOwner{
			ID:        commentM.ID,
			Content:   commentM.Content,
			CreatedAt: commentM.CreatedAt,
		}
		if commentM.Owner != nil {
			row.Owner = entity.OwnerSummary{
				ID:       commentM.Owner.ID,
				Username: commentM.Owner.Username,
				Avatar:   commentM.Owner.AvatarURL,
			}
		}
		comments = append(comments, row)
	}

	return comments, nil
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	// Update the entity with generated values
	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// Update modifies an existing comment's content.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// toCommentDomain converts a GORM model to the domain entity.
func toCommentDomain(commentM *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        commentM.ID,
		VideoID:   commentM.VideoID,
		OwnerID:   commentM.OwnerID,
		Content:   commentM.Content,
		CreatedAt: commentM.CreatedAt,
		UpdatedAt: commentM.UpdatedAt,
	}
}

// fromCommentDomain converts a domain entity to the GORM model.
func fromCommentDomain(comment *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:      comment.ID,
		VideoID: comment.VideoID,
		OwnerID: comment.OwnerID,
		Content: comment.Content,
	}
}
