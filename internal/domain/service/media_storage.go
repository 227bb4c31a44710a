package service

import "context"

// MediaAsset is the structured result of a successful upload to the media host.
type MediaAsset struct {
	URL string // Public URL for playback/display.
	Key string // Opaque key used for later deletion.
}

// MediaStorage abstracts the external media host holding binary assets.
type MediaStorage interface {
	// Upload streams the local temporary file to the media host and returns
	// the asset reference. The temporary file is removed afterward regardless
	// of success or failure.
	Upload(ctx context.Context, localPath, contentType string) (*MediaAsset, error)

	// Delete removes the asset identified by key from the media host.
	// Failures are returned, never swallowed.
	Delete(ctx context.Context, key string) error
}
