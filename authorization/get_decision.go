package authorization

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/authorization/model"
)

type DecisionRecordResponse struct {
	Decision model.AuthorizationDecision `json:"decision"`
}

//encore:api public path=/v1/connect/authorizations/:eventID method=GET
func (s *Service) GetDecision(ctx context.Context, eventID string) (*DecisionRecordResponse, error) {
	if eventID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid event ID"}
	}

	decision, err := s.engine.GetDecision(ctx, eventID)
	if err != nil {
		rlog.Error("failed to get decision", "error", err, "event_id", eventID)
		return nil, err
	}

	return &DecisionRecordResponse{
		Decision: *decision,
	}, nil
}
