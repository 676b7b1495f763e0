package authorization

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/authorization/repository/providers"
)

// ConnectEventRequest is an informational (non-authorization) Connect event.
// These never influence an in-flight decision; the provider-health updates
// they carry are read by the context loaders on the next request.
type ConnectEventRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Type    string `json:"type" validate:"required"`

	Account     *AccountPayload `json:"account,omitempty"`
	AmountCents int64           `json:"amount_cents,omitempty"`
	Destination string          `json:"destination,omitempty"`
}

type AccountPayload struct {
	AccountID      string `json:"account_id" validate:"required"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

type ConnectEventResponse struct {
	Received bool `json:"received"`
}

//encore:api public path=/v1/connect/events method=POST
func (s *Service) RecordConnectEvent(ctx context.Context, req *ConnectEventRequest) (*ConnectEventResponse, error) {
	switch req.Type {
	case "account.updated":
		if req.Account == nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "account payload is required for account.updated"}
		}
		_, err := s.repo.Providers.UpsertProviderAccount(ctx, providers.UpsertProviderAccountParams{
			AccountID:      req.Account.AccountID,
			ChargesEnabled: req.Account.ChargesEnabled,
			PayoutsEnabled: req.Account.PayoutsEnabled,
		})
		if err != nil {
			rlog.Error("failed to update provider account", "error", err, "account_id", req.Account.AccountID)
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to update provider account"}
		}
		rlog.Info("provider account updated", "account_id", req.Account.AccountID, "charges_enabled", req.Account.ChargesEnabled, "payouts_enabled", req.Account.PayoutsEnabled)

	case "application_fee.created":
		rlog.Info("application fee recorded", "event_id", req.EventID, "amount_cents", req.AmountCents)

	case "transfer.created":
		rlog.Info("transfer recorded", "event_id", req.EventID, "amount_cents", req.AmountCents, "destination", req.Destination)

	default:
		rlog.Info("unhandled connect event type", "event_id", req.EventID, "type", req.Type)
	}

	return &ConnectEventResponse{Received: true}, nil
}

// Validate implements validation for ConnectEventRequest
func (r *ConnectEventRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
