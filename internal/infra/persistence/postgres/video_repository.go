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

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{
		db: db,
	}
}

// FindByID retrieves a single video by its unique ID.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by ID")
	}

	return toVideoDomain(&videoM), nil
}

// List runs the filtered, sorted, paginated listing with the owner joined.
func (repo *videoRepository) List(ctx context.Context, opts repository.VideoListOptions) (*entity.VideoPage, error) {
	page, limit := normalizePagination(opts.Page, opts.Limit)

	query := repo.db.WithContext(ctx).Model(&model.VideoModel{})

	if !opts.IncludeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	if opts.OwnerID != nil {
		query = query.Where("owner_id = ?", *opts.OwnerID)
	}
	if opts.Query != "" {
		query = query.Where("title ILIKE ?", "%"+opts.Query+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count videos")
	}

	var videoModels []*model.VideoModel
	if err := query.
		Preload("Owner").
		Order(orderClause(opts.SortBy, opts.SortDesc)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	videos := make([]*entity.VideoWithOwner, 0, len(videoModels))
	for _, videoM := range videoModels {
		videos = append(videos, toVideoWithOwnerDomain(videoM))
	}

	return &entity.VideoPage{
		Videos:     videos,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}, nil
}

// Create persists a new video.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	// Update the entity with generated values
	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// Update modifies an existing video.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"title":         video.Title,
			"description":   video.Description,
			"thumbnail_url": video.Thumbnail.URL,
			"thumbnail_key": video.Thumbnail.Key,
			"is_published":  video.IsPublished,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update video")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViews bumps the view counter by one.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment views")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes a video record.
func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VideoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete video")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// CountByOwner returns the number of videos owned by the channel.
func (repo *videoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count videos by owner")
	}

	return count, nil
}

// SumViewsByOwner returns the channel's total accumulated views.
func (repo *videoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum views by owner")
	}

	return total, nil
}

// normalizePagination clamps page/limit to sane bounds.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// orderClause whitelists sortable columns; anything else falls back to
// created_at so user input never reaches the ORDER BY raw.
func orderClause(sortBy string, desc bool) string {
	column := "created_at"
	switch sortBy {
	case "views", "duration", "title", "created_at":
		column = sortBy
	}

	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	return column + " " + direction
}

// toVideoDomain converts a GORM model to the domain entity.
func toVideoDomain(videoM *model.VideoModel) *entity.Video {
	return &entity.Video{
		ID:      videoM.ID,
		OwnerID: videoM.OwnerID,
		VideoFile: entity.MediaRef{
			URL: videoM.VideoURL,
			Key: videoM.VideoKey,
		},
		Thumbnail: entity.MediaRef{
			URL: videoM.ThumbnailURL,
			Key: videoM.ThumbnailKey,
		},
		Title:       videoM.Title,
		Description: videoM.Description,
		Duration:    videoM.Duration,
		Views:       videoM.Views,
		IsPublished: videoM.IsPublished,
		CreatedAt:   videoM.CreatedAt,
		UpdatedAt:   videoM.UpdatedAt,
	}
}

// toVideoWithOwnerDomain flattens a video row with its preloaded owner.
func toVideoWithOwnerDomain(videoM *model.VideoModel) *entity.VideoWithOwner {
	row := &entity.VideoWithOwner{
		Video: *toVideoDomain(videoM),
	}
	if videoM.Owner != nil {
		row.Owner = entity.OwnerSummary{
			ID:       videoM.Owner.ID,
			Username: videoM.Owner.Username,
			Avatar:   videoM.Owner.AvatarURL,
		}
	}

	return row
}

// fromVideoDomain converts a domain entity to the GORM model.
func fromVideoDomain(video *entity.Video) *model.VideoModel {
	return &model.VideoModel{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		VideoURL:     video.VideoFile.URL,
		VideoKey:     video.VideoFile.Key,
		ThumbnailURL: video.Thumbnail.URL,
		ThumbnailKey: video.Thumbnail.Key,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
	}
}
