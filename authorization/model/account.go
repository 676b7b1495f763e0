package model

import (
	"time"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

type UserTier string

const (
	UserTierFree       UserTier = "free"
	UserTierPro        UserTier = "pro"
	UserTierEnterprise UserTier = "enterprise"
)

type UserAccount struct {
	ID        string     `json:"id"`
	Status    UserStatus `json:"status"`
	Tier      UserTier   `json:"tier"`
	CreatedAt time.Time  `json:"created_at"`
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Status    SubscriptionStatus `json:"status"`
	Plan      string             `json:"plan"`
	CreatedAt time.Time          `json:"created_at"`
}

// ProviderAccount mirrors the connected account's health as last reported by
// the processor. Both capabilities must hold before funds may be routed to it.
type ProviderAccount struct {
	AccountID      string    `json:"account_id"`
	ChargesEnabled bool      `json:"charges_enabled"`
	PayoutsEnabled bool      `json:"payouts_enabled"`
	UpdatedAt      time.Time `json:"updated_at"`
}
