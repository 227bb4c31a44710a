// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system: a registered account that is also
// a channel other users can subscribe to.
type User struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"` // Unique handle, stored lowercased.
	Email         string    `json:"email"`    // Unique login identifier.
	FullName      string    `json:"fullName"`
	PasswordHash  string    `json:"-"` // Never serialized.
	Avatar        MediaRef  `json:"avatar"`
	CoverImage    MediaRef  `json:"coverImage"`
	RefreshToken  string    `json:"-"` // The single active session token; empty when logged out.
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to the delivery layer: credential and
// session fields are cleared.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""
	clone.RefreshToken = ""

	return &clone
}

// MediaRef points at an asset held by the external media host.
type MediaRef struct {
	URL string `json:"url"` // Public URL for playback/display.
	Key string `json:"-"`   // Opaque blob-store key used for deletion.
}

// OwnerSummary is the reduced projection of a User embedded in listing
// responses (comments, subscribers, video owners).
type OwnerSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
}

// Summary reduces a User to the projection used when flattening joined
// owner references in list responses.
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar.URL,
	}
}

// WatchHistoryEntry records a video fetch on the viewer's account.
type WatchHistoryEntry struct {
	UserID    uuid.UUID `json:"userId"`
	VideoID   uuid.UUID `json:"videoId"`
	WatchedAt time.Time `json:"watchedAt"`
}

// ChannelDetails is the aggregate view of a user as a channel.
type ChannelDetails struct {
	ID                      uuid.UUID `json:"id"`
	Username                string    `json:"username"`
	FullName                string    `json:"fullName"`
	Avatar                  string    `json:"avatar"`
	CoverImage              string    `json:"coverImage"`
	SubscriberCount         int64     `json:"subscribersCount"`
	SubscribedChannelsCount int64     `json:"subscribedChannelsCount"`
	IsSubscribed            bool      `json:"isSubscribed"`
}
