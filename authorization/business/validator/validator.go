package validator

import (
	"encore.app/authorization/model"
)

// Context is the read-only snapshot a request is validated against. The
// orchestrator assembles it from the context loaders; validators never reach
// past it, so each one is testable with fabricated context.
type Context struct {
	User               *model.UserAccount
	Subscription       *model.Subscription
	Window             *model.SpendingWindow
	Provider           *model.ProviderAccount
	Relationship       model.RelationshipStats
	RecentTransactions []model.SpendTransaction
	Limits             model.Limits
}

// Tier returns the user's tier, defaulting to free when the user is unknown.
func (c *Context) Tier() model.UserTier {
	if c.User == nil {
		return model.UserTierFree
	}
	return c.User.Tier
}

// WindowTotalCents returns the period total, zero when no window exists yet.
func (c *Context) WindowTotalCents() int64 {
	if c.Window == nil {
		return 0
	}
	return c.Window.TotalAmountCents
}

// Validator is one policy check in the authorization pipeline. Validators are
// pure: they read the request and context and return an outcome, with no
// knowledge of pipeline order and no side effects. Policy denial is a normal
// return value, never an error.
type Validator interface {
	Name() string
	Validate(req *model.AuthorizationRequest, vctx *Context) model.ValidationOutcome
}

// Pipeline returns the policy validators in their fixed evaluation order:
// cheapest and most decisive checks first.
func Pipeline() []Validator {
	return []Validator{
		IdentityValidator{},
		SubscriptionValidator{},
		SpendingLimitValidator{},
		ProviderHealthValidator{},
	}
}
