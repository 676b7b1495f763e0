package validator

import (
	"encore.app/authorization/model"
)

// IdentityValidator confirms the user account exists and is in good standing.
type IdentityValidator struct{}

func (IdentityValidator) Name() string { return "identity" }

func (v IdentityValidator) Validate(req *model.AuthorizationRequest, vctx *Context) model.ValidationOutcome {
	if vctx.User == nil {
		return model.Fail(v.Name(), model.ReasonUserInvalid, "user account not found")
	}

	switch vctx.User.Status {
	case model.UserStatusSuspended:
		return model.Fail(v.Name(), model.ReasonUserInvalid, "user account is suspended")
	case model.UserStatusBanned:
		return model.Fail(v.Name(), model.ReasonUserInvalid, "user account is banned")
	}

	return model.Pass(v.Name())
}
