package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment on a video. Only the owner may edit or delete it.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"videoId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentWithOwner flattens the joined owner projection into a listing row.
type CommentWithOwner struct {
	ID        uuid.UUID    `json:"id"`
	Content   string       `json:"content"`
	Owner     OwnerSummary `json:"owner"`
	CreatedAt time.Time    `json:"createdAt"`
}
