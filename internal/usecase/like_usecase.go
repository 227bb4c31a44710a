package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleResult reports which side of a toggle the operation landed on.
// Added=true means the relationship now exists (HTTP 201); false means it
// was removed (HTTP 200).
type ToggleResult struct {
	Added bool
}

// LikeUsecase defines the interface for like-related business operations.
type LikeUsecase interface {
	ToggleVideoLike(ctx context.Context, videoID, ownerID uuid.UUID) (*ToggleResult, error)
	ToggleCommentLike(ctx context.Context, commentID, ownerID uuid.UUID) (*ToggleResult, error)
	ToggleTweetLike(ctx context.Context, tweetID, ownerID uuid.UUID) (*ToggleResult, error)
	ListLikedVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.LikedVideo, error)
}
