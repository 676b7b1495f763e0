package engine

import (
	"context"

	"encore.app/authorization/business/fraud"
	"encore.app/authorization/business/loader"
	"encore.app/authorization/business/rules"
	"encore.app/authorization/business/validator"
	"encore.app/authorization/domain"
	"encore.app/authorization/idempotency"
	"encore.app/authorization/model"
	"encore.app/authorization/repository/audit"
)

// Business is the authorization orchestrator: the synchronous gate the payment
// processor blocks on. Decide runs the ordered pipeline and composes a
// reason-coded decision; a repeated event id is served from the cache without
// re-running policy.
type Business interface {
	Decide(ctx context.Context, req *model.AuthorizationRequest) (*model.AuthorizationDecision, error)
	GetDecision(ctx context.Context, eventID string) (*model.AuthorizationDecision, error)
}

// Notifier receives post-approval notifications so the spending period
// lifecycle can be tracked outside the request path. Implementations must not
// block the decision.
type Notifier interface {
	SpendReserved(ctx context.Context, req *model.AuthorizationRequest, res *domain.ReserveResult)
}

type business struct {
	loaders    loader.Loaders
	store      idempotency.Store
	guard      domain.Guard
	detector   fraud.Detector
	ruleEngine *rules.Engine
	pipeline   []validator.Validator
	auditRepo  audit.Querier
	limits     model.Limits
	notifier   Notifier
}

// NewBusiness creates the decision engine with its fixed validator pipeline.
func NewBusiness(
	loaders loader.Loaders,
	store idempotency.Store,
	guard domain.Guard,
	detector fraud.Detector,
	ruleEngine *rules.Engine,
	auditRepo audit.Querier,
	limits model.Limits,
	notifier Notifier,
) Business {
	return &business{
		loaders:    loaders,
		store:      store,
		guard:      guard,
		detector:   detector,
		ruleEngine: ruleEngine,
		pipeline:   validator.Pipeline(),
		auditRepo:  auditRepo,
		limits:     limits,
		notifier:   notifier,
	}
}
