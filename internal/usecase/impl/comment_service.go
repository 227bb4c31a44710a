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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		logger:      params.Logger,
	}
}

// ListByVideo pages through a video's comments. The video must exist.
func (srv *commentService) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.CommentWithOwner, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to load video for comments")
	}

	comments, err := srv.commentRepo.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Add attaches a new comment to a video.
func (srv *commentService) Add(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*entity.Comment, error) {
	content = validation.NormalizeText(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to load video for comment")
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Update rewrites a comment's content. Only the owner may do so.
func (srv *commentService) Update(ctx context.Context, commentID, ownerID uuid.UUID, content string) (*entity.Comment, error) {
	content = validation.NormalizeText(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	comment, err := srv.loadOwned(ctx, commentID, ownerID)
	if err != nil {
		return nil, err
	}

	comment.Content = content

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Delete removes a comment. Only the owner may do so.
func (srv *commentService) Delete(ctx context.Context, commentID, ownerID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, commentID, ownerID); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}

// loadOwned fetches a comment and enforces ownership: someone else's comment
// fails FORBIDDEN, never NOT_FOUND.
func (srv *commentService) loadOwned(ctx context.Context, commentID, ownerID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to load comment")
	}

	if comment.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}

	return comment, nil
}
