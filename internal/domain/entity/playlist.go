package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an owner-scoped, ordered collection of video references.
// A video may appear at most once per playlist.
type Playlist struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	OwnerID   uuid.UUID   `json:"ownerId"`
	VideoIDs  []uuid.UUID `json:"videos"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
