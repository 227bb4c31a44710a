package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username      string    `gorm:"type:varchar(100);unique;not null;index"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	AvatarURL     string    `gorm:"type:text;not null"`
	AvatarKey     string    `gorm:"type:varchar(255);not null"`
	CoverImageURL string    `gorm:"type:text"`
	CoverImageKey string    `gorm:"type:varchar(255)"`
	// RefreshToken is the single active session token. Cleared on logout,
	// replaced on login and refresh.
	RefreshToken string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WatchHistoryModel mirrors the 'watch_history' table. One row per view, most
// recent first when ordered by WatchedAt.
type WatchHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null"`
	WatchedAt time.Time `gorm:"not null;index"`

	User  *UserModel  `gorm:"foreignKey:UserID"`
	Video *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
