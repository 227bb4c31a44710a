package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded video together with its playback metadata. The binary
// assets live in the external media host; the entity only carries references.
type Video struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	VideoFile   MediaRef  `json:"videoFile"`
	Thumbnail   MediaRef  `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // Seconds, reported by the media host.
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoWithOwner flattens the joined owner projection into a listing row.
type VideoWithOwner struct {
	Video
	Owner OwnerSummary `json:"owner"`
}

// VideoPage is one page of a video listing.
type VideoPage struct {
	Videos     []*VideoWithOwner `json:"videos"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalCount int64             `json:"totalCount"`
}
