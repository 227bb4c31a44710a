package impl

import (
	"context"
	"log/slog"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for likeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo    repository.LikeRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	TweetRepo   repository.TweetRepository
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:    params.LikeRepo,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		tweetRepo:   params.TweetRepo,
		logger:      params.Logger,
	}
}

// ToggleVideoLike flips the like on a video.
func (srv *likeService) ToggleVideoLike(ctx context.Context, videoID, ownerID uuid.UUID) (*usecase.ToggleResult, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to load video for like")
	}

	return srv.toggle(ctx, ownerID, videoID, entity.LikeTargetVideo)
}

// ToggleCommentLike flips the like on a comment.
func (srv *likeService) ToggleCommentLike(ctx context.Context, commentID, ownerID uuid.UUID) (*usecase.ToggleResult, error) {
	if _, err := srv.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to load comment for like")
	}

	return srv.toggle(ctx, ownerID, commentID, entity.LikeTargetComment)
}

// ToggleTweetLike flips the like on a tweet.
func (srv *likeService) ToggleTweetLike(ctx context.Context, tweetID, ownerID uuid.UUID) (*usecase.ToggleResult, error) {
	if _, err := srv.tweetRepo.FindByID(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return nil, domainerrors.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to load tweet for like")
	}

	return srv.toggle(ctx, ownerID, tweetID, entity.LikeTargetTweet)
}

// toggle is check-then-act: the unique index turns a lost race into a
// CONFLICT instead of a duplicate row.
func (srv *likeService) toggle(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) (*usecase.ToggleResult, error) {
	_, err := srv.likeRepo.Find(ctx, ownerID, targetID, target)
	switch {
	case err == nil:
		// Like exists, remove it. A concurrent removal already did the work.
		if err := srv.likeRepo.Delete(ctx, ownerID, targetID, target); err != nil &&
			!errors.Is(err, repository.ErrLikeNotFound) {
			return nil, errors.Wrap(err, "failed to remove like")
		}

		return &usecase.ToggleResult{Added: false}, nil

	case errors.Is(err, repository.ErrLikeNotFound):
		like := &entity.Like{OwnerID: ownerID}
		switch target {
		case entity.LikeTargetComment:
			like.CommentID = &targetID
		case entity.LikeTargetTweet:
			like.TweetID = &targetID
		default:
			like.VideoID = &targetID
		}

		if err := srv.likeRepo.Create(ctx, like); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateLike):
				return nil, domainerrors.ErrConflict.WrapMessage("like already exists")
			case errors.Is(err, repository.ErrVideoNotFound):
				// Target deleted between the pre-check and the insert.
				return nil, domainerrors.ErrVideoNotFound
			case errors.Is(err, repository.ErrCommentNotFound):
				return nil, domainerrors.ErrCommentNotFound
			case errors.Is(err, repository.ErrTweetNotFound):
				return nil, domainerrors.ErrTweetNotFound
			}

			return nil, errors.Wrap(err, "failed to create like")
		}

		return &usecase.ToggleResult{Added: true}, nil

	default:
		return nil, errors.Wrap(err, "failed to check existing like")
	}
}

// ListLikedVideos returns the videos the user has liked.
func (srv *likeService) ListLikedVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.LikedVideo, error) {
	liked, err := srv.likeRepo.ListLikedVideos(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	return liked, nil
}
