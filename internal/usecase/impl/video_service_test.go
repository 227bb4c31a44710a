package impl

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoServiceMocks struct {
	videoRepo    *mockRepo.MockVideoRepository
	userRepo     *mockRepo.MockUserRepository
	mediaStorage *mockSvc.MockMediaStorage
}

func newVideoService(t *testing.T) (usecase.VideoUsecase, *videoServiceMocks) {
	m := &videoServiceMocks{
		videoRepo:    mockRepo.NewMockVideoRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		mediaStorage: mockSvc.NewMockMediaStorage(t),
	}

	svc := NewVideoService(VideoServiceParams{
		VideoRepo:    m.videoRepo,
		UserRepo:     m.userRepo,
		MediaStorage: m.mediaStorage,
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func TestVideoService_Upload(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.mediaStorage.On("Upload", ctx, "/tmp/clip.mp4", "video/mp4").
		Return(&service.MediaAsset{URL: "https://cdn/clip.mp4", Key: "clip-key"}, nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/thumb.jpg", "image/jpeg").
		Return(&service.MediaAsset{URL: "https://cdn/thumb.jpg", Key: "thumb-key"}, nil)
	m.videoRepo.On("Create", ctx, mock.AnythingOfType("*entity.Video")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Video).ID = uuid.New()
		}).
		Return(nil)

	video, err := svc.Upload(ctx, usecase.UploadVideoInput{
		OwnerID:     ownerID,
		Title:       "My first video",
		Description: "A short description",
		Duration:    12.5,
		VideoFile:   usecase.FileUpload{Path: "/tmp/clip.mp4", ContentType: "video/mp4"},
		Thumbnail:   usecase.FileUpload{Path: "/tmp/thumb.jpg", ContentType: "image/jpeg"},
	})
	require.NoError(t, err)
	assert.True(t, video.IsPublished)
	assert.Equal(t, "clip-key", video.VideoFile.Key)
	assert.Equal(t, "thumb-key", video.Thumbnail.Key)
}

func TestVideoService_Upload_CleansUpBlobsWhenCreateFails(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()

	m.mediaStorage.On("Upload", ctx, "/tmp/clip.mp4", "video/mp4").
		Return(&service.MediaAsset{URL: "https://cdn/clip.mp4", Key: "clip-key"}, nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/thumb.jpg", "image/jpeg").
		Return(&service.MediaAsset{URL: "https://cdn/thumb.jpg", Key: "thumb-key"}, nil)
	m.videoRepo.On("Create", ctx, mock.AnythingOfType("*entity.Video")).
		Return(errors.New("insert failed"))
	m.mediaStorage.On("Delete", ctx, "clip-key").Return(nil)
	m.mediaStorage.On("Delete", ctx, "thumb-key").Return(nil)

	_, err := svc.Upload(ctx, usecase.UploadVideoInput{
		OwnerID:     uuid.New(),
		Title:       "My first video",
		Description: "A short description",
		VideoFile:   usecase.FileUpload{Path: "/tmp/clip.mp4", ContentType: "video/mp4"},
		Thumbnail:   usecase.FileUpload{Path: "/tmp/thumb.jpg", ContentType: "image/jpeg"},
	})
	assert.Error(t, err)
}

func TestVideoService_Upload_CleansUpVideoWhenThumbnailFails(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()

	m.mediaStorage.On("Upload", ctx, "/tmp/clip.mp4", "video/mp4").
		Return(&service.MediaAsset{URL: "https://cdn/clip.mp4", Key: "clip-key"}, nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/thumb.jpg", "image/jpeg").
		Return(nil, errors.New("bucket unavailable"))
	m.mediaStorage.On("Delete", ctx, "clip-key").Return(nil)

	_, err := svc.Upload(ctx, usecase.UploadVideoInput{
		OwnerID:     uuid.New(),
		Title:       "My first video",
		Description: "A short description",
		VideoFile:   usecase.FileUpload{Path: "/tmp/clip.mp4", ContentType: "video/mp4"},
		Thumbnail:   usecase.FileUpload{Path: "/tmp/thumb.jpg", ContentType: "image/jpeg"},
	})
	assert.Error(t, err)
}

func TestVideoService_Get_IncrementsViewsForKnownViewer(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	viewerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New(), IsPublished: true, Views: 9}, nil)
	m.videoRepo.On("IncrementViews", ctx, videoID).Return(nil)
	m.userRepo.On("AppendWatchHistory", ctx, viewerID, videoID).Return(nil)

	video, err := svc.Get(ctx, videoID, &viewerID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), video.Views)
}

func TestVideoService_Get_ViewFailuresDoNotFailTheRead(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	viewerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New(), IsPublished: true, Views: 9}, nil)
	m.videoRepo.On("IncrementViews", ctx, videoID).Return(errors.New("deadlock"))
	m.userRepo.On("AppendWatchHistory", ctx, viewerID, videoID).Return(errors.New("connection reset"))

	video, err := svc.Get(ctx, videoID, &viewerID)
	require.NoError(t, err)
	// The counter stays untouched when the increment never landed.
	assert.Equal(t, int64(9), video.Views)
}

func TestVideoService_Get_AnonymousViewerDoesNotCount(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New(), IsPublished: true, Views: 9}, nil)

	video, err := svc.Get(ctx, videoID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), video.Views)
	m.videoRepo.AssertNotCalled(t, "IncrementViews", ctx, videoID)
}

func TestVideoService_Get_DraftHiddenFromOthers(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	viewerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New(), IsPublished: false}, nil)

	_, err := svc.Get(ctx, videoID, &viewerID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Get_DraftVisibleToOwner(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: ownerID, IsPublished: false}, nil)
	m.videoRepo.On("IncrementViews", ctx, videoID).Return(nil)
	m.userRepo.On("AppendWatchHistory", ctx, ownerID, videoID).Return(nil)

	video, err := svc.Get(ctx, videoID, &ownerID)
	require.NoError(t, err)
	assert.False(t, video.IsPublished)
}

func TestVideoService_Update_NonOwnerForbidden(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New()}, nil)

	_, err := svc.Update(ctx, usecase.UpdateVideoInput{
		VideoID:     videoID,
		OwnerID:     uuid.New(),
		Title:       "New title",
		Description: "New description",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVideoService_Update_ReplacesThumbnailAfterPersist(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{
			ID:        videoID,
			OwnerID:   ownerID,
			Thumbnail: entity.MediaRef{URL: "https://cdn/old.jpg", Key: "old-thumb"},
		}, nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/new.jpg", "image/jpeg").
		Return(&service.MediaAsset{URL: "https://cdn/new.jpg", Key: "new-thumb"}, nil)
	m.videoRepo.On("Update", ctx, mock.AnythingOfType("*entity.Video")).Return(nil)
	m.mediaStorage.On("Delete", ctx, "old-thumb").Return(nil)

	video, err := svc.Update(ctx, usecase.UpdateVideoInput{
		VideoID:     videoID,
		OwnerID:     ownerID,
		Title:       "New title",
		Description: "New description",
		Thumbnail:   &usecase.FileUpload{Path: "/tmp/new.jpg", ContentType: "image/jpeg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-thumb", video.Thumbnail.Key)
}

func TestVideoService_Update_FailedMetadataUpdateKeepsLiveThumbnail(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{
			ID:        videoID,
			OwnerID:   ownerID,
			Thumbnail: entity.MediaRef{URL: "https://cdn/live.jpg", Key: "live-thumb-key"},
		}, nil)
	m.videoRepo.On("Update", ctx, mock.AnythingOfType("*entity.Video")).
		Return(errors.New("connection reset"))

	_, err := svc.Update(ctx, usecase.UpdateVideoInput{
		VideoID:     videoID,
		OwnerID:     ownerID,
		Title:       "New title",
		Description: "New description",
	})
	require.Error(t, err)
	m.mediaStorage.AssertNotCalled(t, "Delete", ctx, "live-thumb-key")
}

func TestVideoService_Update_FailedPersistCleansUpNewThumbnailOnly(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{
			ID:        videoID,
			OwnerID:   ownerID,
			Thumbnail: entity.MediaRef{URL: "https://cdn/old.jpg", Key: "old-thumb"},
		}, nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/new.jpg", "image/jpeg").
		Return(&service.MediaAsset{URL: "https://cdn/new.jpg", Key: "new-thumb"}, nil)
	m.videoRepo.On("Update", ctx, mock.AnythingOfType("*entity.Video")).
		Return(errors.New("connection reset"))
	m.mediaStorage.On("Delete", ctx, "new-thumb").Return(nil)

	_, err := svc.Update(ctx, usecase.UpdateVideoInput{
		VideoID:     videoID,
		OwnerID:     ownerID,
		Title:       "New title",
		Description: "New description",
		Thumbnail:   &usecase.FileUpload{Path: "/tmp/new.jpg", ContentType: "image/jpeg"},
	})
	require.Error(t, err)
	m.mediaStorage.AssertNotCalled(t, "Delete", ctx, "old-thumb")
}

func TestVideoService_Delete_RemovesRecordAndAssets(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{
			ID:        videoID,
			OwnerID:   ownerID,
			VideoFile: entity.MediaRef{Key: "clip-key"},
			Thumbnail: entity.MediaRef{Key: "thumb-key"},
		}, nil)
	m.videoRepo.On("Delete", ctx, videoID).Return(nil)
	m.mediaStorage.On("Delete", ctx, "clip-key").Return(nil)
	m.mediaStorage.On("Delete", ctx, "thumb-key").Return(nil)

	require.NoError(t, svc.Delete(ctx, videoID, ownerID))
}

func TestVideoService_Delete_BlobFailureReportedButRecordStaysGone(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{
			ID:        videoID,
			OwnerID:   ownerID,
			VideoFile: entity.MediaRef{Key: "clip-key"},
			Thumbnail: entity.MediaRef{Key: "thumb-key"},
		}, nil)
	m.videoRepo.On("Delete", ctx, videoID).Return(nil)
	m.mediaStorage.On("Delete", ctx, "clip-key").Return(errors.New("bucket unavailable"))
	m.mediaStorage.On("Delete", ctx, "thumb-key").Return(nil)

	err := svc.Delete(ctx, videoID, ownerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MEDIA_DELETE_FAILED", appErr.ErrorCode())
}

func TestVideoService_Delete_NonOwnerForbidden(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New()}, nil)

	err := svc.Delete(ctx, videoID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVideoService_TogglePublish(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	m.videoRepo.On("FindByID", ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: ownerID, IsPublished: true}, nil)
	m.videoRepo.On("Update", ctx, mock.AnythingOfType("*entity.Video")).Return(nil)

	video, err := svc.TogglePublish(ctx, videoID, ownerID)
	require.NoError(t, err)
	assert.False(t, video.IsPublished)
}

func TestVideoService_List_MapsSortDirection(t *testing.T) {
	svc, m := newVideoService(t)
	ctx := context.Background()

	m.videoRepo.On("List", ctx, mock.MatchedBy(func(opts repository.VideoListOptions) bool {
		return opts.SortBy == "views" && !opts.SortDesc
	})).Return(&entity.VideoPage{Page: 1, Limit: 10}, nil)

	_, err := svc.List(ctx, usecase.ListVideosInput{SortBy: "views", SortType: "asc"})
	require.NoError(t, err)
}
