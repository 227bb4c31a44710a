package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for playlist persistence.
var (
	// ErrPlaylistNotFound is returned when a playlist does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrDuplicatePlaylistVideo is returned when a video is already in the playlist.
	ErrDuplicatePlaylistVideo = errors.New("video already in playlist")
	// ErrPlaylistVideoNotFound is returned when removing a video that is not in the playlist.
	ErrPlaylistVideoNotFound = errors.New("video not in playlist")
)

// PlaylistRepository defines the standard operations for playlist persistence.
type PlaylistRepository interface {
	// FindByID retrieves a playlist with its ordered video references.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// ListByOwner returns all playlists owned by a user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// Create persists a new playlist.
	Create(ctx context.Context, playlist *entity.Playlist) error

	// Rename updates the playlist name.
	Rename(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes the playlist and its video references.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends a video reference. The unique (playlist, video) index
	// makes a duplicate surface as ErrDuplicatePlaylistVideo.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideo removes a video reference.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
}
