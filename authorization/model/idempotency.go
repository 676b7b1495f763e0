package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies a cached decision by upstream event id.
type IdempotencyKey struct {
	EventID string
}

// IdempotencyCacheEntry is the write-once record backing redelivery handling.
// RequestHash detects an event id being reused with a different payload.
type IdempotencyCacheEntry struct {
	Status      string          `json:"status"`
	RequestHash string          `json:"request_hash"`
	Decision    json.RawMessage `json:"decision,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)
