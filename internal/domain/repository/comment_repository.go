package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByVideo returns one page of a video's comments with the owner
	// projection joined and flattened.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.CommentWithOwner, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies an existing comment's content.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
