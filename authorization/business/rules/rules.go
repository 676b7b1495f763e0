package rules

import (
	"fmt"

	"encore.app/authorization/business/validator"
	"encore.app/authorization/model"
)

// Rule is a data-driven cross-cutting override evaluated after base validity
// is established. Rules only tighten ceilings, never loosen them: a rule can
// deny below a platform limit but can never approve above one.
type Rule struct {
	Name string
	Code model.ReasonCode
	// Tier restricts the rule to users of that tier; empty matches any tier.
	Tier model.UserTier
	// ColdStart restricts the rule to the first transaction between this
	// user and this provider.
	ColdStart    bool
	CeilingCents int64
	Message      string
}

// Evaluate returns nil when the rule does not apply to this request, otherwise
// the rule's outcome.
func (r Rule) Evaluate(req *model.AuthorizationRequest, vctx *validator.Context) *model.ValidationOutcome {
	if r.Tier != "" && vctx.Tier() != r.Tier {
		return nil
	}
	if r.ColdStart && vctx.Relationship.TransactionCount > 0 {
		return nil
	}

	if req.AmountCents > r.CeilingCents {
		out := model.Fail(r.Name, r.Code, fmt.Sprintf("%s (limit %d)", r.Message, r.CeilingCents))
		return &out
	}

	out := model.Pass(r.Name)
	return &out
}

// Engine evaluates an ordered rule list. If several rules would deny, the
// first in the list wins, matching the pipeline's first-failure-wins policy.
type Engine struct {
	rules []Rule
}

func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Apply evaluates every applicable rule and returns their outcomes plus the
// first failing outcome, if any.
func (e *Engine) Apply(req *model.AuthorizationRequest, vctx *validator.Context) ([]model.ValidationOutcome, *model.ValidationOutcome) {
	var outcomes []model.ValidationOutcome
	var firstFail *model.ValidationOutcome

	for _, rule := range e.rules {
		out := rule.Evaluate(req, vctx)
		if out == nil {
			continue
		}
		outcomes = append(outcomes, *out)
		if !out.Valid && firstFail == nil {
			failed := *out
			firstFail = &failed
		}
	}

	return outcomes, firstFail
}

// Default returns the configured rule list: a lower per-transaction ceiling
// for free-tier accounts, and a lower ceiling for the first transaction with
// a new provider (cold-start risk reduction).
func Default(limits model.Limits) []Rule {
	return []Rule{
		{
			Name:         "free_tier_ceiling",
			Code:         model.ReasonFreeTierLimit,
			Tier:         model.UserTierFree,
			CeilingCents: limits.FreeTierTransactionCents,
			Message:      "free tier accounts have a lower per-transaction limit",
		},
		{
			Name:         "first_provider_ceiling",
			Code:         model.ReasonFirstTimeProviderLimit,
			ColdStart:    true,
			CeilingCents: limits.FirstProviderTransactionCents,
			Message:      "first transaction with a new provider has a lower limit",
		},
	}
}
