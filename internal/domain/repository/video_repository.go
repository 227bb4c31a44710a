package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoListOptions carries the filter/sort/pagination knobs of a video listing.
type VideoListOptions struct {
	Page     int
	Limit    int
	Query    string     // Case-insensitive title substring match.
	SortBy   string     // Column name; defaults to created_at.
	SortDesc bool       // Sort direction; defaults to descending.
	OwnerID  *uuid.UUID // Restrict to a single channel.

	// IncludeUnpublished lifts the is_published filter. Only the dashboard
	// (a channel listing its own videos) may set it.
	IncludeUnpublished bool
}

// VideoRepository defines the standard operations for video persistence.
type VideoRepository interface {
	// FindByID retrieves a single video by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// List runs the filtered, sorted, paginated listing with the owner
	// projection joined and flattened.
	List(ctx context.Context, opts VideoListOptions) (*entity.VideoPage, error)

	// Create persists a new video entity.
	Create(ctx context.Context, video *entity.Video) error

	// Update modifies an existing video entity.
	Update(ctx context.Context, video *entity.Video) error

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// Delete removes a video record.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByOwner returns the number of videos owned by the channel.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// SumViewsByOwner returns the channel's total accumulated views.
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
