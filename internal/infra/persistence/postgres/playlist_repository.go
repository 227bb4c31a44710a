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

// playlistRepository implements the repository.PlaylistRepository interface.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{
		db: db,
	}
}

// FindByID retrieves a playlist with its ordered video references.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by ID")
	}

	return toPlaylistDomain(&playlistM), nil
}

// ListByOwner returns all playlists owned by a user, newest first.
func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistModels []*model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlists by owner")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	for _, playlistM := range playlistModels {
		playlists = append(playlists, toPlaylistDomain(playlistM))
	}

	return playlists, nil
}

// Create persists a new playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := &model.PlaylistModel{
		OwnerID: playlist.OwnerID,
		Name:    playlist.Name,
	}

	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	// Update the entity with generated values
	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

// Rename updates the playlist name.
func (repo *playlistRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", id).
		Update("name", name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to rename playlist")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes the playlist and its video references.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ?", id).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete playlist videos")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaylistModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete playlist")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo appends a video reference at the end of the playlist.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	// Next position = current max + 1.
	var maxPosition int
	if err := repo.db.WithContext(ctx).
		Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPosition).Error; err != nil {
		return errors.Wrap(err, "failed to compute playlist position")
	}

	entryM := &model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   maxPosition + 1,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePlaylistVideo
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add video to playlist")
	}

	return nil
}

// RemoveVideo removes a video reference from the playlist.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove video from playlist")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaylistVideoNotFound
	}

	return nil
}

// toPlaylistDomain converts a GORM model to the domain entity.
func toPlaylistDomain(playlistM *model.PlaylistModel) *entity.Playlist {
	videoIDs := make([]uuid.UUID, 0, len(playlistM.Videos))
	for _, entryM := range playlistM.Videos {
		videoIDs = append(videoIDs, entryM.VideoID)
	}

	return &entity.Playlist{
		ID:        playlistM.ID,
		Name:      playlistM.Name,
		OwnerID:   playlistM.OwnerID,
		VideoIDs:  videoIDs,
		CreatedAt: playlistM.CreatedAt,
		UpdatedAt: playlistM.UpdatedAt,
	}
}
