package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// TweetUsecase defines the interface for tweet-related business operations.
type TweetUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)
	Update(ctx context.Context, tweetID, ownerID uuid.UUID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, tweetID, ownerID uuid.UUID) error
}
