package validator

import (
	"encore.app/authorization/model"
)

// ProviderHealthValidator confirms the connected provider account can both
// receive charges and be paid out. Both capabilities are required.
type ProviderHealthValidator struct{}

func (ProviderHealthValidator) Name() string { return "provider_health" }

func (v ProviderHealthValidator) Validate(req *model.AuthorizationRequest, vctx *Context) model.ValidationOutcome {
	if vctx.Provider == nil {
		return model.Fail(v.Name(), model.ReasonProviderNotReady, "provider account unknown")
	}

	if !vctx.Provider.ChargesEnabled {
		return model.Fail(v.Name(), model.ReasonProviderNotReady, "provider account not enabled for charges")
	}

	if !vctx.Provider.PayoutsEnabled {
		return model.Fail(v.Name(), model.ReasonProviderNotReady, "provider account not enabled for payouts")
	}

	return model.Pass(v.Name())
}
