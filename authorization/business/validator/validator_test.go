package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/authorization/model"
)

var limits = model.Limits{
	PerTransactionCents: 20000,
	PerPeriodCents:      100000,
}

func request(amountCents int64) *model.AuthorizationRequest {
	return &model.AuthorizationRequest{
		EventID:            "evt_1",
		UserID:             "user_1",
		AmountCents:        amountCents,
		Currency:           "USD",
		ConnectedAccountID: "acct_1",
	}
}

func TestIdentityValidator(t *testing.T) {
	testCases := []struct {
		name          string
		user          *model.UserAccount
		expectedValid bool
		expectedCode  model.ReasonCode
	}{
		{
			name:          "active_user",
			user:          &model.UserAccount{ID: "user_1", Status: model.UserStatusActive},
			expectedValid: true,
		},
		{
			name:         "unknown_user",
			user:         nil,
			expectedCode: model.ReasonUserInvalid,
		},
		{
			name:         "suspended_user",
			user:         &model.UserAccount{ID: "user_1", Status: model.UserStatusSuspended},
			expectedCode: model.ReasonUserInvalid,
		},
		{
			name:         "banned_user",
			user:         &model.UserAccount{ID: "user_1", Status: model.UserStatusBanned},
			expectedCode: model.ReasonUserInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := IdentityValidator{}.Validate(request(4000), &Context{User: tc.user, Limits: limits})

			assert.Equal(t, tc.expectedValid, out.Valid)
			assert.Equal(t, "identity", out.Step)
			if !tc.expectedValid {
				assert.Equal(t, tc.expectedCode, out.Code)
			}
		})
	}
}

func TestSubscriptionValidator(t *testing.T) {
	testCases := []struct {
		name          string
		subscription  *model.Subscription
		expectedValid bool
	}{
		{
			name:          "active_subscription",
			subscription:  &model.Subscription{ID: "sub_1", Status: model.SubscriptionStatusActive},
			expectedValid: true,
		},
		{
			name:         "no_subscription",
			subscription: nil,
		},
		{
			name:         "past_due_subscription",
			subscription: &model.Subscription{ID: "sub_1", Status: model.SubscriptionStatusPastDue},
		},
		{
			name:         "canceled_subscription",
			subscription: &model.Subscription{ID: "sub_1", Status: model.SubscriptionStatusCanceled},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := SubscriptionValidator{}.Validate(request(4000), &Context{Subscription: tc.subscription, Limits: limits})

			assert.Equal(t, tc.expectedValid, out.Valid)
			if !tc.expectedValid {
				assert.Equal(t, model.ReasonNoActiveEntitlement, out.Code)
			}
		})
	}
}

func TestSpendingLimitValidator(t *testing.T) {
	testCases := []struct {
		name          string
		amountCents   int64
		windowTotal   int64
		noWindow      bool
		expectedValid bool
		expectedCode  model.ReasonCode
	}{
		{
			name:          "well_within_limits",
			amountCents:   4000,
			windowTotal:   45000,
			expectedValid: true,
		},
		{
			name:          "exactly_at_transaction_limit",
			amountCents:   20000,
			expectedValid: true,
		},
		{
			name:         "one_over_transaction_limit",
			amountCents:  20001,
			expectedCode: model.ReasonExceedsTransactionLimit,
		},
		{
			name:          "exactly_fills_period",
			amountCents:   15000,
			windowTotal:   85000,
			expectedValid: true,
		},
		{
			name:         "one_over_period_limit",
			amountCents:  15001,
			windowTotal:  85000,
			expectedCode: model.ReasonExceedsPeriodLimit,
		},
		{
			// First transaction of the period: no window row exists yet.
			name:          "no_window_counts_as_zero",
			amountCents:   20000,
			noWindow:      true,
			expectedValid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vctx := &Context{Limits: limits}
			if !tc.noWindow {
				vctx.Window = &model.SpendingWindow{ID: 1, TotalAmountCents: tc.windowTotal}
			}

			out := SpendingLimitValidator{}.Validate(request(tc.amountCents), vctx)

			assert.Equal(t, tc.expectedValid, out.Valid)
			if !tc.expectedValid {
				assert.Equal(t, tc.expectedCode, out.Code)
			}
		})
	}
}

func TestProviderHealthValidator(t *testing.T) {
	testCases := []struct {
		name          string
		provider      *model.ProviderAccount
		expectedValid bool
	}{
		{
			name:          "fully_enabled",
			provider:      &model.ProviderAccount{AccountID: "acct_1", ChargesEnabled: true, PayoutsEnabled: true},
			expectedValid: true,
		},
		{
			name:     "unknown_provider",
			provider: nil,
		},
		{
			name:     "charges_disabled",
			provider: &model.ProviderAccount{AccountID: "acct_1", PayoutsEnabled: true},
		},
		{
			name:     "payouts_disabled",
			provider: &model.ProviderAccount{AccountID: "acct_1", ChargesEnabled: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := ProviderHealthValidator{}.Validate(request(4000), &Context{Provider: tc.provider, Limits: limits})

			assert.Equal(t, tc.expectedValid, out.Valid)
			if !tc.expectedValid {
				assert.Equal(t, model.ReasonProviderNotReady, out.Code)
			}
		})
	}
}

func TestPipelineOrder(t *testing.T) {
	pipeline := Pipeline()

	names := make([]string, 0, len(pipeline))
	for _, v := range pipeline {
		names = append(names, v.Name())
	}

	assert.Equal(t, []string{"identity", "subscription", "spending_limit", "provider_health"}, names)
}
