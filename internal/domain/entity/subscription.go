package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a toggle record: its existence means the subscriber follows
// the channel. At most one may exist per (subscriber, channel) pair, enforced
// by a unique index in the store.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	SubscriberID uuid.UUID `json:"subscriberId"`
	ChannelID    uuid.UUID `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Subscriber is a channel-subscribers listing row.
type Subscriber struct {
	Subscriber   OwnerSummary `json:"subscriber"`
	SubscribedAt time.Time    `json:"subscribedAt"`
}

// SubscribedChannel is a subscribed-channels listing row.
type SubscribedChannel struct {
	Channel      OwnerSummary `json:"channel"`
	SubscribedAt time.Time    `json:"subscribedAt"`
}
