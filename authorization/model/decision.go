package model

import (
	"time"
)

// AuthorizationDecision is the pipeline output returned to the payment
// processor. Once produced for an event it is immutable and cached, so every
// redelivery of that event observes the identical decision.
type AuthorizationDecision struct {
	ID               string            `json:"id"`
	EventID          string            `json:"event_id"`
	Approved         bool              `json:"approved"`
	Reason           ReasonCode        `json:"reason"`
	ReasonMessage    string            `json:"reason_message"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	AmountAdjustment *int64            `json:"amount_adjustment,omitempty"`
	DecidedAt        time.Time         `json:"decided_at"`
}

// Denied builds a denial decision for the given request. AmountAdjustment is
// reserved for partial approvals and always absent today.
func Denied(eventID string, code ReasonCode, message string) *AuthorizationDecision {
	return &AuthorizationDecision{
		EventID:       eventID,
		Approved:      false,
		Reason:        code,
		ReasonMessage: message,
		DecidedAt:     time.Now().UTC(),
	}
}
