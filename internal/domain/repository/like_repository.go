package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for like persistence.
var (
	// ErrLikeNotFound is returned when no like exists for the (owner, target) pair.
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the store's uniqueness constraint on
	// the (owner, target) pair rejects a concurrent duplicate insert.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines the standard operations for like persistence.
type LikeRepository interface {
	// Find retrieves the like for the (owner, target) pair, if any.
	Find(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) (*entity.Like, error)

	// Create persists a new like. The unique index on the (owner, target)
	// pair makes a concurrent duplicate surface as ErrDuplicateLike.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes the like for the (owner, target) pair.
	Delete(ctx context.Context, ownerID, targetID uuid.UUID, target entity.LikeTarget) error

	// ListLikedVideos returns the videos the owner has liked.
	ListLikedVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.LikedVideo, error)

	// CountByVideoOwner counts likes received across all of a channel's videos.
	CountByVideoOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
