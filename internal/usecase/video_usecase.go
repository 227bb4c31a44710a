package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListVideosInput carries the listing knobs from the query string.
type ListVideosInput struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string     // "asc" or "desc"; anything else means desc.
	OwnerID  *uuid.UUID // Restrict to one channel.
}

// UploadVideoInput defines the data required to publish a new video.
type UploadVideoInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Duration    float64
	VideoFile   FileUpload
	Thumbnail   FileUpload
}

// UpdateVideoInput carries a metadata update plus an optional thumbnail
// replacement.
type UpdateVideoInput struct {
	VideoID     uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Thumbnail   *FileUpload
}

// VideoUsecase defines the interface for video-related business operations.
type VideoUsecase interface {
	List(ctx context.Context, input ListVideosInput) (*entity.VideoPage, error)

	Upload(ctx context.Context, input UploadVideoInput) (*entity.Video, error)

	// Get returns the video and, when a viewer is known, bumps the view
	// counter and appends the fetch to the viewer's watch history.
	Get(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error)

	Update(ctx context.Context, input UpdateVideoInput) (*entity.Video, error)

	// Delete removes the record first, then both blob assets. A blob
	// failure is reported but never resurrects the record.
	Delete(ctx context.Context, videoID, ownerID uuid.UUID) error

	TogglePublish(ctx context.Context, videoID, ownerID uuid.UUID) (*entity.Video, error)
}
