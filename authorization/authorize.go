package authorization

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/authorization/model"
)

// AuthorizeRequest is the normalized authorization event handed over by the
// webhook gateway after signature verification. Only the event id is rejected
// at the transport layer: everything else failing structural validation still
// produces a deny decision, because the processor needs a verdict body.
type AuthorizeRequest struct {
	EventID            string `json:"event_id" validate:"required"`
	UserID             string `json:"user_id"`
	AmountCents        int64  `json:"amount_cents"`
	Currency           string `json:"currency"`
	ConnectedAccountID string `json:"connected_account_id"`
	SubscriptionID     string `json:"subscription_id,omitempty"`
}

// DecisionResponse is the decision object the processor blocks on.
// AmountAdjustment is reserved for partial approvals and absent today.
type DecisionResponse struct {
	Approved         bool              `json:"approved"`
	Reason           string            `json:"reason"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	AmountAdjustment *int64            `json:"amount_adjustment,omitempty"`
}

//encore:api public path=/v1/connect/authorizations method=POST
func (s *Service) Authorize(ctx context.Context, req *AuthorizeRequest) (*DecisionResponse, error) {
	request := &model.AuthorizationRequest{
		EventID:            req.EventID,
		UserID:             req.UserID,
		AmountCents:        req.AmountCents,
		Currency:           req.Currency,
		ConnectedAccountID: req.ConnectedAccountID,
		SubscriptionID:     req.SubscriptionID,
		ReceivedAt:         time.Now().UTC(),
	}

	decision, err := s.engine.Decide(ctx, request)
	if err != nil {
		rlog.Error("failed to decide authorization", "error", err, "event_id", req.EventID)
		return nil, err
	}

	return toDecisionResponse(decision), nil
}

// Validate implements validation for AuthorizeRequest using go-playground/validator
func (r *AuthorizeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

func toDecisionResponse(decision *model.AuthorizationDecision) *DecisionResponse {
	return &DecisionResponse{
		Approved:         decision.Approved,
		Reason:           string(decision.Reason),
		Metadata:         decision.Metadata,
		AmountAdjustment: decision.AmountAdjustment,
	}
}
