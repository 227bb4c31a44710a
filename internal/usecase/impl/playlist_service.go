package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"
	"vidtube/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for playlistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		logger:       params.Logger,
	}
}

// Create makes a new empty playlist.
func (srv *playlistService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Playlist, error) {
	name = validation.NormalizeText(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	playlist := &entity.Playlist{
		Name:    name,
		OwnerID: ownerID,
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// ListByUser returns all of a user's playlists.
func (srv *playlistService) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

// Get returns a playlist by id.
func (srv *playlistService) Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	return playlist, nil
}

// Rename updates the playlist name. Only the owner may do so.
func (srv *playlistService) Rename(ctx context.Context, playlistID, ownerID uuid.UUID, name string) (*entity.Playlist, error) {
	name = validation.NormalizeText(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	playlist, err := srv.loadOwned(ctx, playlistID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.Rename(ctx, playlistID, name); err != nil {
		return nil, errors.Wrap(err, "failed to rename playlist")
	}

	playlist.Name = name

	return playlist, nil
}

// Delete removes a playlist. Only the owner may do so.
func (srv *playlistService) Delete(ctx context.Context, playlistID, ownerID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, playlistID, ownerID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return domainerrors.ErrPlaylistNotFound
		}

		return errors.Wrap(err, "failed to delete playlist")
	}

	return nil
}

// AddVideo appends a video to the playlist. A video may appear only once;
// the unique index rejects duplicates as CONFLICT.
func (srv *playlistService) AddVideo(ctx context.Context, playlistID, videoID, ownerID uuid.UUID) (*entity.Playlist, error) {
	if _, err := srv.loadOwned(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to load video for playlist")
	}

	if err := srv.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrDuplicatePlaylistVideo) {
			return nil, domainerrors.ErrConflict.WrapMessage("video already in playlist")
		}
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to add video to playlist")
	}

	return srv.Get(ctx, playlistID)
}

// RemoveVideo drops a video from the playlist. Only the owner may do so.
func (srv *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID uuid.UUID) (*entity.Playlist, error) {
	if _, err := srv.loadOwned(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrPlaylistVideoNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("video not in playlist")
		}

		return nil, errors.Wrap(err, "failed to remove video from playlist")
	}

	return srv.Get(ctx, playlistID)
}

// loadOwned fetches a playlist and enforces ownership: someone else's
// playlist fails FORBIDDEN, never NOT_FOUND.
func (srv *playlistService) loadOwned(ctx context.Context, playlistID, ownerID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	if playlist.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}

	return playlist, nil
}
