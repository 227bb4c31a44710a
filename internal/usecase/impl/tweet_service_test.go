package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tweetServiceMocks struct {
	tweetRepo *mockRepo.MockTweetRepository
	userRepo  *mockRepo.MockUserRepository
}

func newTweetService(t *testing.T) (usecase.TweetUsecase, *tweetServiceMocks) {
	m := &tweetServiceMocks{
		tweetRepo: mockRepo.NewMockTweetRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}

	svc := NewTweetService(TweetServiceParams{
		TweetRepo: m.tweetRepo,
		UserRepo:  m.userRepo,
		Logger:    newDiscardLogger(),
	})

	return svc, m
}

func TestTweetService_Create(t *testing.T) {
	svc, m := newTweetService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.tweetRepo.On("Create", ctx, mock.MatchedBy(func(tw *entity.Tweet) bool {
		return tw.OwnerID == ownerID && tw.Content == "Hello world"
	})).Return(nil)

	tweet, err := svc.Create(ctx, ownerID, "  Hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", tweet.Content)
}

func TestTweetService_Create_EmptyContent(t *testing.T) {
	svc, _ := newTweetService(t)

	_, err := svc.Create(context.Background(), uuid.New(), "   ")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestTweetService_ListByUser_UnknownUser(t *testing.T) {
	svc, m := newTweetService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.userRepo.On("FindByID", ctx, ownerID).
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.ListByUser(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestTweetService_Update_NonOwnerForbidden(t *testing.T) {
	svc, m := newTweetService(t)
	ctx := context.Background()
	tweetID := uuid.New()

	m.tweetRepo.On("FindByID", ctx, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: uuid.New()}, nil)

	_, err := svc.Update(ctx, tweetID, uuid.New(), "Edited")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTweetService_Update(t *testing.T) {
	svc, m := newTweetService(t)
	ctx := context.Background()
	tweetID := uuid.New()
	ownerID := uuid.New()

	m.tweetRepo.On("FindByID", ctx, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: ownerID, Content: "Old"}, nil)
	m.tweetRepo.On("Update", ctx, mock.MatchedBy(func(tw *entity.Tweet) bool {
		return tw.Content == "Edited"
	})).Return(nil)

	tweet, err := svc.Update(ctx, tweetID, ownerID, "Edited")
	require.NoError(t, err)
	assert.Equal(t, "Edited", tweet.Content)
}

func TestTweetService_Delete(t *testing.T) {
	svc, m := newTweetService(t)
	ctx := context.Background()
	tweetID := uuid.New()
	ownerID := uuid.New()

	m.tweetRepo.On("FindByID", ctx, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: ownerID}, nil)
	m.tweetRepo.On("Delete", ctx, tweetID).Return(nil)

	require.NoError(t, svc.Delete(ctx, tweetID, ownerID))
}

func TestTweetService_Delete_UnknownTweet(t *testing.T) {
	svc, m := newTweetService(t)
	ctx := context.Background()
	tweetID := uuid.New()

	m.tweetRepo.On("FindByID", ctx, tweetID).
		Return(nil, repository.ErrTweetNotFound)

	err := svc.Delete(ctx, tweetID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrTweetNotFound)
}
