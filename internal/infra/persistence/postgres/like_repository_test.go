package postgres

import (
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLikeTargetNotFound(t *testing.T) {
	targetID := uuid.New()

	assert.ErrorIs(t, likeTargetNotFound(&entity.Like{VideoID: &targetID}), repository.ErrVideoNotFound)
	assert.ErrorIs(t, likeTargetNotFound(&entity.Like{CommentID: &targetID}), repository.ErrCommentNotFound)
	assert.ErrorIs(t, likeTargetNotFound(&entity.Like{TweetID: &targetID}), repository.ErrTweetNotFound)
}
