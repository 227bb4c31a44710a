package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. The unique pair
// (subscriber_id, channel_id) closes the toggle race at the database.
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair"`
	ChannelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair;index"`
	CreatedAt    time.Time

	Subscriber *UserModel `gorm:"foreignKey:SubscriberID"`
	Channel    *UserModel `gorm:"foreignKey:ChannelID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
