package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. Exactly one of VideoID, CommentID and
// TweetID is set. Partial unique indexes (owner_id, video_id) etc. make a
// second like for the same target fail at the database, which is what turns
// a concurrent double-toggle into a conflict instead of a duplicate row.
type LikeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_likes_owner_video;uniqueIndex:idx_likes_owner_comment;uniqueIndex:idx_likes_owner_tweet"`
	VideoID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_owner_video,where:video_id IS NOT NULL"`
	CommentID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_owner_comment,where:comment_id IS NOT NULL"`
	TweetID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_owner_tweet,where:tweet_id IS NOT NULL"`
	CreatedAt time.Time

	Video *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
