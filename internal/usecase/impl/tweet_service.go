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

// tweetService implements the TweetUsecase interface.
type tweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for tweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TweetRepo repository.TweetRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: params.TweetRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// Create posts a new tweet.
func (srv *tweetService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error) {
	content = validation.NormalizeText(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	tweet := &entity.Tweet{
		OwnerID: ownerID,
		Content: content,
	}

	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

// ListByUser returns all tweets posted by a user. The user must exist.
func (srv *tweetService) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for tweets")
	}

	tweets, err := srv.tweetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	return tweets, nil
}

// Update rewrites a tweet's content. Only the owner may do so.
func (srv *tweetService) Update(ctx context.Context, tweetID, ownerID uuid.UUID, content string) (*entity.Tweet, error) {
	content = validation.NormalizeText(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	tweet, err := srv.loadOwned(ctx, tweetID, ownerID)
	if err != nil {
		return nil, err
	}

	tweet.Content = content

	if err := srv.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

// Delete removes a tweet. Only the owner may do so.
func (srv *tweetService) Delete(ctx context.Context, tweetID, ownerID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, tweetID, ownerID); err != nil {
		return err
	}

	if err := srv.tweetRepo.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return domainerrors.ErrTweetNotFound
		}

		return errors.Wrap(err, "failed to delete tweet")
	}

	return nil
}

// loadOwned fetches a tweet and enforces ownership: someone else's tweet
// fails FORBIDDEN, never NOT_FOUND.
func (srv *tweetService) loadOwned(ctx context.Context, tweetID, ownerID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return nil, domainerrors.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to load tweet")
	}

	if tweet.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}

	return tweet, nil
}
