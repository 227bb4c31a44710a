package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTweetNotFound is returned when a tweet does not exist.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository defines the standard operations for tweet persistence.
type TweetRepository interface {
	// FindByID retrieves a single tweet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)

	// ListByOwner returns all tweets posted by a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)

	// Create persists a new tweet.
	Create(ctx context.Context, tweet *entity.Tweet) error

	// Update modifies an existing tweet's content.
	Update(ctx context.Context, tweet *entity.Tweet) error

	// Delete removes a tweet.
	Delete(ctx context.Context, id uuid.UUID) error
}
