package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type playlistServiceMocks struct {
	playlistRepo *mockRepo.MockPlaylistRepository
	videoRepo    *mockRepo.MockVideoRepository
}

func newPlaylistService(t *testing.T) (usecase.PlaylistUsecase, *playlistServiceMocks) {
	m := &playlistServiceMocks{
		playlistRepo: mockRepo.NewMockPlaylistRepository(t),
		videoRepo:    mockRepo.NewMockVideoRepository(t),
	}

	svc := NewPlaylistService(PlaylistServiceParams{
		PlaylistRepo: m.playlistRepo,
		VideoRepo:    m.videoRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestPlaylistService_Create(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.playlistRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Playlist) bool {
		return p.OwnerID == ownerID && p.Name == "Watch later"
	})).Return(nil)

	playlist, err := svc.Create(ctx, ownerID, "  Watch later  ")
	require.NoError(t, err)
	assert.Equal(t, "Watch later", playlist.Name)
}

func TestPlaylistService_Create_EmptyName(t *testing.T) {
	svc, _ := newPlaylistService(t)

	_, err := svc.Create(context.Background(), uuid.New(), "   ")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPlaylistService_Rename_NonOwnerForbidden(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: uuid.New()}, nil)

	_, err := svc.Rename(ctx, playlistID, uuid.New(), "Renamed")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPlaylistService_AddVideo(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil).Once()
	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	m.playlistRepo.On("AddVideo", ctx, playlistID, videoID).Return(nil)
	// The refreshed playlist now carries the video.
	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID, VideoIDs: []uuid.UUID{videoID}}, nil).Once()

	playlist, err := svc.AddVideo(ctx, playlistID, videoID, ownerID)
	require.NoError(t, err)
	require.Len(t, playlist.VideoIDs, 1)
	assert.Equal(t, videoID, playlist.VideoIDs[0])
}

func TestPlaylistService_AddVideo_DuplicateIsConflict(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	m.playlistRepo.On("AddVideo", ctx, playlistID, videoID).
		Return(repository.ErrDuplicatePlaylistVideo)

	_, err := svc.AddVideo(ctx, playlistID, videoID, ownerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestPlaylistService_AddVideo_UnknownVideo(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	m.videoRepo.On("FindByID", ctx, videoID).
		Return(nil, repository.ErrVideoNotFound)

	_, err := svc.AddVideo(ctx, playlistID, videoID, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestPlaylistService_RemoveVideo_NotInPlaylist(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	m.playlistRepo.On("RemoveVideo", ctx, playlistID, videoID).
		Return(repository.ErrPlaylistVideoNotFound)

	_, err := svc.RemoveVideo(ctx, playlistID, videoID, ownerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestPlaylistService_Delete(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()
	ownerID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	m.playlistRepo.On("Delete", ctx, playlistID).Return(nil)

	require.NoError(t, svc.Delete(ctx, playlistID, ownerID))
}

func TestPlaylistService_Get_UnknownPlaylist(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	playlistID := uuid.New()

	m.playlistRepo.On("FindByID", ctx, playlistID).
		Return(nil, repository.ErrPlaylistNotFound)

	_, err := svc.Get(ctx, playlistID)
	assert.ErrorIs(t, err, domainerrors.ErrPlaylistNotFound)
}

func TestPlaylistService_ListByUser(t *testing.T) {
	svc, m := newPlaylistService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.playlistRepo.On("ListByOwner", ctx, ownerID).
		Return([]*entity.Playlist{{Name: "Watch later", OwnerID: ownerID}}, nil)

	playlists, err := svc.ListByUser(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "Watch later", playlists[0].Name)
}
