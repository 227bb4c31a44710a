package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table.
type PlaylistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Videos []PlaylistVideoModel `gorm:"foreignKey:PlaylistID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistVideoModel mirrors the 'playlist_videos' join table. The unique
// pair keeps a video from appearing in the same playlist twice; Position
// preserves insertion order.
type PlaylistVideoModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlaylistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_videos_pair"`
	VideoID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_videos_pair"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time

	Video *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
