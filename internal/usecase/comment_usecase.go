package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.CommentWithOwner, error)
	Add(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*entity.Comment, error)
	Update(ctx context.Context, commentID, ownerID uuid.UUID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID, ownerID uuid.UUID) error
}
