package model

import (
	"time"
)

type SpendingWindowStatus string

const (
	SpendingWindowOpen   SpendingWindowStatus = "open"
	SpendingWindowClosed SpendingWindowStatus = "closed"
)

// SpendingWindow is the per-user rolling aggregate a period ceiling is enforced
// against. It is created lazily on the first transaction of a period, read-only
// during validation, and incremented exactly once per approved event.
type SpendingWindow struct {
	ID               int32                `json:"id"`
	UserID           string               `json:"user_id"`
	PeriodStart      time.Time            `json:"period_start"`
	PeriodEnd        time.Time            `json:"period_end"`
	TotalAmountCents int64                `json:"total_amount_cents"`
	TransactionCount int32                `json:"transaction_count"`
	Status           SpendingWindowStatus `json:"status"`
	WorkflowID       *string              `json:"workflow_id,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// SpendTransaction is the durable per-event ledger row behind the window
// aggregate. The unique event id keeps the increment at-most-once across
// redeliveries, and the rows double as the user/provider relationship history.
type SpendTransaction struct {
	ID                int32     `json:"id"`
	EventID           string    `json:"event_id"`
	UserID            string    `json:"user_id"`
	ProviderAccountID string    `json:"provider_account_id"`
	AmountCents       int64     `json:"amount_cents"`
	Currency          string    `json:"currency"`
	SubscriptionID    *string   `json:"subscription_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// RelationshipStats summarizes the history between one user and one provider.
type RelationshipStats struct {
	UserID            string `json:"user_id"`
	ProviderAccountID string `json:"provider_account_id"`
	TransactionCount  int64  `json:"transaction_count"`
}

// CurrentPeriod returns the calendar-month window containing ts, in UTC.
func CurrentPeriod(ts time.Time) (time.Time, time.Time) {
	ts = ts.UTC()
	start := time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
