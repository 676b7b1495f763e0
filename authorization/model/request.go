package model

import (
	"time"
)

// AuthorizationRequest is the normalized authorization event handed over by the
// webhook gateway. Redeliveries of the same logical event reuse the same EventID.
type AuthorizationRequest struct {
	EventID            string    `json:"event_id"`
	UserID             string    `json:"user_id"`
	AmountCents        int64     `json:"amount_cents"`
	Currency           string    `json:"currency"`
	ConnectedAccountID string    `json:"connected_account_id"`
	SubscriptionID     string    `json:"subscription_id,omitempty"`
	ReceivedAt         time.Time `json:"received_at"`
}

// Payload returns the delivery-stable fields of the request. ReceivedAt varies
// per delivery attempt, so redelivery conflict detection hashes this instead
// of the full request.
func (r *AuthorizationRequest) Payload() any {
	return struct {
		EventID            string `json:"event_id"`
		UserID             string `json:"user_id"`
		AmountCents        int64  `json:"amount_cents"`
		Currency           string `json:"currency"`
		ConnectedAccountID string `json:"connected_account_id"`
		SubscriptionID     string `json:"subscription_id,omitempty"`
	}{
		EventID:            r.EventID,
		UserID:             r.UserID,
		AmountCents:        r.AmountCents,
		Currency:           r.Currency,
		ConnectedAccountID: r.ConnectedAccountID,
		SubscriptionID:     r.SubscriptionID,
	}
}

type ReasonCode string

const (
	ReasonApproved                ReasonCode = "APPROVED"
	ReasonMalformedRequest        ReasonCode = "MALFORMED_REQUEST"
	ReasonUserInvalid             ReasonCode = "USER_INVALID"
	ReasonNoActiveEntitlement     ReasonCode = "NO_ACTIVE_ENTITLEMENT"
	ReasonExceedsTransactionLimit ReasonCode = "EXCEEDS_TRANSACTION_LIMIT"
	ReasonExceedsPeriodLimit      ReasonCode = "EXCEEDS_PERIOD_LIMIT"
	ReasonProviderNotReady        ReasonCode = "PROVIDER_NOT_READY"
	ReasonFraudSuspected          ReasonCode = "FRAUD_SUSPECTED"
	ReasonFreeTierLimit           ReasonCode = "FREE_TIER_LIMIT"
	ReasonFirstTimeProviderLimit  ReasonCode = "FIRST_TIME_PROVIDER_LIMIT"
	ReasonSystemError             ReasonCode = "SYSTEM_ERROR"
)

// ValidationOutcome is the result of a single validator or business rule.
// Validators never mutate shared state; they read context and return this.
type ValidationOutcome struct {
	Step    string     `json:"step"`
	Valid   bool       `json:"valid"`
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
}

func Pass(step string) ValidationOutcome {
	return ValidationOutcome{Step: step, Valid: true, Code: ReasonApproved, Message: "validated"}
}

func Fail(step string, code ReasonCode, message string) ValidationOutcome {
	return ValidationOutcome{Step: step, Valid: false, Code: code, Message: message}
}
