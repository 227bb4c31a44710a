package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"
	"vidtube/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
	mediaStorage service.MediaStorage
	logger       *slog.Logger
}

// VideoServiceParams holds dependencies for videoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo    repository.VideoRepository
	UserRepo     repository.UserRepository
	MediaStorage service.MediaStorage
	Logger       *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo:    params.VideoRepo,
		userRepo:     params.UserRepo,
		mediaStorage: params.MediaStorage,
		logger:       params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List runs the public video listing. Unpublished videos never appear here.
func (srv *videoService) List(ctx context.Context, input usecase.ListVideosInput) (*entity.VideoPage, error) {
	page, err := srv.videoRepo.List(ctx, repository.VideoListOptions{
		Page:     input.Page,
		Limit:    input.Limit,
		Query:    validation.NormalizeText(input.Query),
		SortBy:   input.SortBy,
		SortDesc: input.SortType != "asc",
		OwnerID:  input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return page, nil
}

// Upload publishes a new video: both assets go to the media host first, the
// record is persisted after. A failed persist orphans nothing; uploaded
// blobs are cleaned up best-effort.
func (srv *videoService) Upload(ctx context.Context, input usecase.UploadVideoInput) (*entity.Video, error) {
	if err := validation.PublishVideoInput(input.Title, input.Description); err != nil {
		return nil, err
	}
	if input.VideoFile.Path == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("video file is required")
	}
	if input.Thumbnail.Path == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("thumbnail file is required")
	}

	videoAsset, err := srv.mediaStorage.Upload(ctx, input.VideoFile.Path, input.VideoFile.ContentType)
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	thumbAsset, err := srv.mediaStorage.Upload(ctx, input.Thumbnail.Path, input.Thumbnail.ContentType)
	if err != nil {
		srv.cleanupAssets(ctx, videoAsset.Key)

		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	video := &entity.Video{
		OwnerID:     input.OwnerID,
		VideoFile:   entity.MediaRef{URL: videoAsset.URL, Key: videoAsset.Key},
		Thumbnail:   entity.MediaRef{URL: thumbAsset.URL, Key: thumbAsset.Key},
		Title:       validation.NormalizeText(input.Title),
		Description: validation.NormalizeText(input.Description),
		Duration:    input.Duration,
		IsPublished: true,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		srv.cleanupAssets(ctx, videoAsset.Key, thumbAsset.Key)

		return nil, err
	}

	srv.log(ctx).Info("video uploaded",
		slog.String("videoID", video.ID.String()), slog.String("ownerID", input.OwnerID.String()))

	return video, nil
}

// Get returns one video. Drafts are only visible to their owner. A known
// viewer bumps the view counter and gets a watch-history entry; both are
// best-effort and never fail the read.
func (srv *videoService) Get(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	if !video.IsPublished && (viewerID == nil || *viewerID != video.OwnerID) {
		// A draft is indistinguishable from a missing video.
		return nil, domainerrors.ErrVideoNotFound
	}

	if viewerID != nil {
		if err := srv.videoRepo.IncrementViews(ctx, videoID); err != nil {
			srv.log(ctx).Warn("failed to increment views",
				slog.String("videoID", videoID.String()), slog.Any("error", err))
		} else {
			video.Views++
		}

		if err := srv.userRepo.AppendWatchHistory(ctx, *viewerID, videoID); err != nil {
			srv.log(ctx).Warn("failed to append watch history",
				slog.String("videoID", videoID.String()), slog.Any("error", err))
		}
	}

	return video, nil
}

// Update applies metadata changes and optionally replaces the thumbnail
// (upload, persist, then drop the old blob).
func (srv *videoService) Update(ctx context.Context, input usecase.UpdateVideoInput) (*entity.Video, error) {
	if err := validation.UpdateVideoInput(input.Title, input.Description); err != nil {
		return nil, err
	}

	video, err := srv.loadOwned(ctx, input.VideoID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	newThumb := false
	oldThumbKey := ""
	if input.Thumbnail != nil && input.Thumbnail.Path != "" {
		asset, err := srv.mediaStorage.Upload(ctx, input.Thumbnail.Path, input.Thumbnail.ContentType)
		if err != nil {
			return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
		}

		newThumb = true
		oldThumbKey = video.Thumbnail.Key
		video.Thumbnail = entity.MediaRef{URL: asset.URL, Key: asset.Key}
	}

	video.Title = validation.NormalizeText(input.Title)
	video.Description = validation.NormalizeText(input.Description)

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		// Only a freshly uploaded thumbnail is orphaned here; the live one
		// stays referenced by the row.
		if newThumb {
			srv.cleanupAssets(ctx, video.Thumbnail.Key)
		}

		return nil, err
	}

	// Old thumbnail only goes after the row points at the new one.
	srv.cleanupAssets(ctx, oldThumbKey)

	return video, nil
}

// Delete removes the record first, then both blob assets. A blob failure is
// reported, but the record stays gone; the operation is not atomic across
// the two systems and the record is the source of truth.
func (srv *videoService) Delete(ctx context.Context, videoID, ownerID uuid.UUID) error {
	video, err := srv.loadOwned(ctx, videoID, ownerID)
	if err != nil {
		return err
	}

	if err := srv.videoRepo.Delete(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return domainerrors.ErrVideoNotFound
		}

		return errors.Wrap(err, "failed to delete video record")
	}

	var blobErr error
	for _, key := range []string{video.VideoFile.Key, video.Thumbnail.Key} {
		if key == "" {
			continue
		}
		if err := srv.mediaStorage.Delete(ctx, key); err != nil {
			srv.log(ctx).Error("failed to delete video asset",
				slog.String("videoID", videoID.String()), slog.String("key", key), slog.Any("error", err))
			blobErr = err
		}
	}

	if blobErr != nil {
		return domainerrors.ErrMediaDeleteFailed.WrapMessage(blobErr.Error())
	}

	return nil
}

// TogglePublish flips the draft/published state.
func (srv *videoService) TogglePublish(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := srv.loadOwned(ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

// loadOwned fetches a video and enforces ownership: a video owned by someone
// else fails FORBIDDEN, never NOT_FOUND.
func (srv *videoService) loadOwned(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	if video.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}

	return video, nil
}

func (srv *videoService) cleanupAssets(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := srv.mediaStorage.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("failed to delete orphaned media asset",
				slog.String("key", key), slog.Any("error", err))
		}
	}
}
