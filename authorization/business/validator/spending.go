package validator

import (
	"fmt"

	"encore.app/authorization/model"
)

// SpendingLimitValidator compares the amount against the per-transaction
// ceiling and the window total against the per-period ceiling. This is the
// read-only fast path; the authoritative period re-check happens under the
// window row lock at reservation time.
type SpendingLimitValidator struct{}

func (SpendingLimitValidator) Name() string { return "spending_limit" }

func (v SpendingLimitValidator) Validate(req *model.AuthorizationRequest, vctx *Context) model.ValidationOutcome {
	if req.AmountCents > vctx.Limits.PerTransactionCents {
		return model.Fail(v.Name(), model.ReasonExceedsTransactionLimit,
			fmt.Sprintf("amount exceeds per-transaction limit of %d", vctx.Limits.PerTransactionCents))
	}

	if vctx.WindowTotalCents()+req.AmountCents > vctx.Limits.PerPeriodCents {
		return model.Fail(v.Name(), model.ReasonExceedsPeriodLimit,
			fmt.Sprintf("transaction would exceed period limit of %d", vctx.Limits.PerPeriodCents))
	}

	return model.Pass(v.Name())
}
