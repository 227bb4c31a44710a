package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeTarget names the kind of resource a Like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like is a toggle record: its existence means the owner liked the target.
// Exactly one of VideoID, CommentID, TweetID is set. At most one Like may
// exist per (owner, target) pair; the store enforces this with unique indexes.
type Like struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"ownerId"`
	VideoID   *uuid.UUID `json:"videoId,omitempty"`
	CommentID *uuid.UUID `json:"commentId,omitempty"`
	TweetID   *uuid.UUID `json:"tweetId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LikedVideo is a liked-videos listing row.
type LikedVideo struct {
	LikeID uuid.UUID `json:"likeId"`
	Video  *Video    `json:"video"`
}
