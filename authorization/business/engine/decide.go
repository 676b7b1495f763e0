package engine

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/authorization/idempotency"
	"encore.app/authorization/model"
	"encore.app/authorization/repository/audit"
)

// Decide resolves an authorization request to a decision. The idempotency
// store guarantees at most one pipeline execution per event id; redeliveries
// get the cached decision byte-identically.
func (b *business) Decide(ctx context.Context, req *model.AuthorizationRequest) (*model.AuthorizationDecision, error) {
	hash := idempotency.HashRequest(req.Payload())

	decision, cached, err := b.store.GetOrCreate(ctx, req.EventID, hash, func(ctx context.Context) (*model.AuthorizationDecision, error) {
		return b.compute(ctx, req), nil
	})
	if err != nil {
		return nil, err
	}

	if cached {
		rlog.Info("served cached decision", "event_id", req.EventID, "approved", decision.Approved)
	}
	return decision, nil
}

// compute runs the pipeline once. It never returns an error: infrastructure
// failure is folded into a SYSTEM_ERROR denial so the gate fails closed, and
// policy denial is a normal decision, not an error.
func (b *business) compute(ctx context.Context, req *model.AuthorizationRequest) *model.AuthorizationDecision {
	var outcomes []model.ValidationOutcome

	// Structural validation is a distinct class from policy denial: the
	// request never reaches the validators, and the denial is not fraud.
	if out := structuralOutcome(req); !out.Valid {
		outcomes = append(outcomes, out)
		rlog.Warn("malformed authorization request", "event_id", req.EventID, "message", out.Message)
		return b.finish(ctx, req, model.Denied(req.EventID, out.Code, out.Message), outcomes)
	}
	outcomes = append(outcomes, model.Pass("structural"))

	vctx, err := b.loaders.LoadContext(ctx, req)
	if err != nil {
		rlog.Error("context loading failed", "event_id", req.EventID, "error", err)
		return b.finish(ctx, req, systemError(req.EventID), outcomes)
	}

	// Every validator runs over the loaded context so the audit record holds
	// the full ordered outcome list; only the first failure is surfaced.
	var firstFail *model.ValidationOutcome
	for _, v := range b.pipeline {
		out := v.Validate(req, vctx)
		outcomes = append(outcomes, out)
		if !out.Valid && firstFail == nil {
			failed := out
			firstFail = &failed
		}
	}

	signal := b.detector.Score(req, vctx)
	fraudOut := fraudOutcome(signal)
	outcomes = append(outcomes, fraudOut)
	if !fraudOut.Valid && firstFail == nil {
		firstFail = &fraudOut
	}

	ruleOutcomes, ruleFail := b.ruleEngine.Apply(req, vctx)
	outcomes = append(outcomes, ruleOutcomes...)
	if ruleFail != nil && firstFail == nil {
		firstFail = ruleFail
	}

	if firstFail != nil {
		rlog.Info("authorization denied", "event_id", req.EventID, "reason", firstFail.Code, "step", firstFail.Step)
		decision := model.Denied(req.EventID, firstFail.Code, firstFail.Message)
		decision.Metadata = denialMetadata(signal)
		return b.finish(ctx, req, decision, outcomes)
	}

	// Authoritative period check: re-verified and incremented under the
	// window row lock, so two concurrent approvals cannot jointly exceed
	// the ceiling.
	res, err := b.guard.ReserveSpend(ctx, req, b.limits.PerPeriodCents)
	if err != nil {
		rlog.Error("spend reservation failed", "event_id", req.EventID, "error", err)
		outcomes = append(outcomes, model.Fail("spend_reservation", model.ReasonSystemError, "spend reservation failed"))
		return b.finish(ctx, req, systemError(req.EventID), outcomes)
	}
	if res.Exceeded {
		rlog.Info("authorization denied", "event_id", req.EventID, "reason", model.ReasonExceedsPeriodLimit, "step", "spend_reservation")
		out := model.Fail("spend_reservation", model.ReasonExceedsPeriodLimit, "concurrent spending exhausted the period limit")
		outcomes = append(outcomes, out)
		return b.finish(ctx, req, model.Denied(req.EventID, out.Code, out.Message), outcomes)
	}
	outcomes = append(outcomes, model.Pass("spend_reservation"))

	decision := b.approved(req, signal)
	final := b.finish(ctx, req, decision, outcomes)

	if !final.Approved {
		// The audit write downgraded the approval, so the reservation must
		// not stand: a denied decision never keeps spend in the window.
		if err := b.guard.ReleaseSpend(ctx, req); err != nil {
			rlog.Error("failed to release spend reservation", "event_id", req.EventID, "error", err)
		}
		return final
	}

	if b.notifier != nil {
		b.notifier.SpendReserved(ctx, req, res)
	}

	return final
}

// finish writes the audit record and seals the decision. The audit trail is a
// compliance requirement, so a failed write downgrades the decision to a
// closed failure rather than approving unaudited spend.
func (b *business) finish(ctx context.Context, req *model.AuthorizationRequest, decision *model.AuthorizationDecision, outcomes []model.ValidationOutcome) *model.AuthorizationDecision {
	if decision.ID == "" {
		decision.ID = uuid.NewString()
	}

	decisionJSON, err := json.Marshal(decision)
	if err == nil {
		var outcomesJSON []byte
		outcomesJSON, err = json.Marshal(outcomes)
		if err == nil {
			_, err = b.auditRepo.InsertAuditRecord(ctx, audit.InsertAuditRecordParams{
				ID:       uuid.NewString(),
				EventID:  req.EventID,
				Approved: decision.Approved,
				Reason:   string(decision.Reason),
				Decision: decisionJSON,
				Outcomes: outcomesJSON,
			})
		}
	}
	if err != nil {
		rlog.Error("audit write failed", "event_id", req.EventID, "error", err)
		if decision.Approved {
			return systemError(req.EventID)
		}
	}

	return decision
}

func (b *business) approved(req *model.AuthorizationRequest, signal model.FraudSignal) *model.AuthorizationDecision {
	metadata := map[string]string{
		"approved_by":      "subtrack_pro",
		"validation_score": "high",
		"user_id":          req.UserID,
	}
	for k, v := range denialMetadata(signal) {
		metadata[k] = v
	}

	return &model.AuthorizationDecision{
		ID:            uuid.NewString(),
		EventID:       req.EventID,
		Approved:      true,
		Reason:        model.ReasonApproved,
		ReasonMessage: "payment authorized",
		Metadata:      metadata,
		DecidedAt:     time.Now().UTC(),
	}
}

// GetDecision returns the audited decision for an event id.
func (b *business) GetDecision(ctx context.Context, eventID string) (*model.AuthorizationDecision, error) {
	record, err := b.auditRepo.GetAuditRecordByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "no decision recorded for event"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load decision"}
	}

	var decision model.AuthorizationDecision
	if err := json.Unmarshal(record.Decision, &decision); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "recorded decision is unreadable"}
	}
	return &decision, nil
}

// systemError is the fail-closed decision: on infrastructure failure the safe
// mode for an authorization gate is denial, never silent approval.
func systemError(eventID string) *model.AuthorizationDecision {
	return model.Denied(eventID, model.ReasonSystemError, "system error during authorization check")
}

func structuralOutcome(req *model.AuthorizationRequest) model.ValidationOutcome {
	switch {
	case req.EventID == "":
		return model.Fail("structural", model.ReasonMalformedRequest, "event id is required")
	case req.UserID == "":
		return model.Fail("structural", model.ReasonMalformedRequest, "user id is required")
	case req.ConnectedAccountID == "":
		return model.Fail("structural", model.ReasonMalformedRequest, "connected account id is required")
	case req.AmountCents <= 0:
		return model.Fail("structural", model.ReasonMalformedRequest, "amount must be positive")
	case len(req.Currency) != 3:
		return model.Fail("structural", model.ReasonMalformedRequest, "currency must be a 3-letter code")
	}
	return model.Pass("structural")
}

func fraudOutcome(signal model.FraudSignal) model.ValidationOutcome {
	if signal.Severity == model.FraudSeverityHigh {
		return model.Fail("fraud", model.ReasonFraudSuspected, signal.Evidence)
	}
	return model.Pass("fraud")
}

// denialMetadata surfaces a medium-severity signal without denying; it is the
// extension point for future step-up checks.
func denialMetadata(signal model.FraudSignal) map[string]string {
	if signal.Severity != model.FraudSeverityMedium {
		return nil
	}
	return map[string]string{
		"fraud_signal":   signal.SignalType,
		"fraud_evidence": signal.Evidence,
	}
}
