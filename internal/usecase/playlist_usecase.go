package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistUsecase defines the interface for playlist-related business operations.
type PlaylistUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Playlist, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)
	Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)
	Rename(ctx context.Context, playlistID, ownerID uuid.UUID, name string) (*entity.Playlist, error)
	Delete(ctx context.Context, playlistID, ownerID uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID, ownerID uuid.UUID) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, ownerID uuid.UUID) (*entity.Playlist, error)
}
