package validator

import (
	"encore.app/authorization/model"
)

// SubscriptionValidator confirms the user holds the entitlement required to
// transact at all: an active subscription relationship.
type SubscriptionValidator struct{}

func (SubscriptionValidator) Name() string { return "subscription" }

func (v SubscriptionValidator) Validate(req *model.AuthorizationRequest, vctx *Context) model.ValidationOutcome {
	if vctx.Subscription == nil {
		return model.Fail(v.Name(), model.ReasonNoActiveEntitlement, "no active subscription found")
	}

	if vctx.Subscription.Status != model.SubscriptionStatusActive {
		return model.Fail(v.Name(), model.ReasonNoActiveEntitlement, "subscription is not active")
	}

	return model.Pass(v.Name())
}
