package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/authorization/business/fraud"
	"encore.app/authorization/business/rules"
	"encore.app/authorization/business/validator"
	"encore.app/authorization/domain"
	"encore.app/authorization/idempotency"
	"encore.app/authorization/mocks/business/context_loader"
	"encore.app/authorization/mocks/domain/spend_guard"
	"encore.app/authorization/mocks/repository/audit_repo"
	"encore.app/authorization/mocks/store/decision_store"
	"encore.app/authorization/model"
	"encore.app/authorization/repository/audit"
)

var testLimits = model.Limits{
	PerTransactionCents:           20000,
	PerPeriodCents:                100000,
	FreeTierTransactionCents:      5000,
	FirstProviderTransactionCents: 2500,
	FraudOutlierCents:             100000,
	FraudVelocityPerHour:          10,
}

func testRequest(amountCents int64) *model.AuthorizationRequest {
	return &model.AuthorizationRequest{
		EventID:            "evt_123",
		UserID:             "user_1",
		AmountCents:        amountCents,
		Currency:           "USD",
		ConnectedAccountID: "acct_1",
		SubscriptionID:     "sub_1",
		ReceivedAt:         time.Now().UTC(),
	}
}

// healthyContext fabricates a context that passes every validator: active pro
// user, active subscription, healthy provider, established relationship.
func healthyContext(windowTotalCents int64) *validator.Context {
	return &validator.Context{
		User:         &model.UserAccount{ID: "user_1", Status: model.UserStatusActive, Tier: model.UserTierPro},
		Subscription: &model.Subscription{ID: "sub_1", UserID: "user_1", Status: model.SubscriptionStatusActive, Plan: "pro_monthly"},
		Window:       &model.SpendingWindow{ID: 1, UserID: "user_1", TotalAmountCents: windowTotalCents, Status: model.SpendingWindowOpen},
		Provider:     &model.ProviderAccount{AccountID: "acct_1", ChargesEnabled: true, PayoutsEnabled: true},
		Relationship: model.RelationshipStats{UserID: "user_1", ProviderAccountID: "acct_1", TransactionCount: 5},
		Limits:       testLimits,
	}
}

type engineMocks struct {
	loaders *context_loader.MockLoaders
	store   *decision_store.MockStore
	guard   *spend_guard.MockGuard
	audit   *audit_repo.MockQuerier
}

func newTestBusiness(ctrl *gomock.Controller, blockedAccounts []string) (*business, *engineMocks) {
	m := &engineMocks{
		loaders: context_loader.NewMockLoaders(ctrl),
		store:   decision_store.NewMockStore(ctrl),
		guard:   spend_guard.NewMockGuard(ctrl),
		audit:   audit_repo.NewMockQuerier(ctrl),
	}
	b := &business{
		loaders:    m.loaders,
		store:      m.store,
		guard:      m.guard,
		detector:   fraud.NewDetector(blockedAccounts),
		ruleEngine: rules.NewEngine(rules.Default(testLimits)),
		pipeline:   validator.Pipeline(),
		auditRepo:  m.audit,
		limits:     testLimits,
	}
	return b, m
}

// passThroughStore makes the mock store execute the compute function, so the
// pipeline runs as if the event were seen for the first time.
func passThroughStore(m *engineMocks) {
	m.store.EXPECT().
		GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, eventID, requestHash string, compute idempotency.ComputeFunc) (*model.AuthorizationDecision, bool, error) {
			decision, err := compute(ctx)
			return decision, false, err
		})
}

func TestDecide_Pipeline(t *testing.T) {
	recent := func(n int) []model.SpendTransaction {
		txns := make([]model.SpendTransaction, n)
		for i := range txns {
			txns[i] = model.SpendTransaction{ID: int32(i + 1), UserID: "user_1"}
		}
		return txns
	}

	testCases := []struct {
		name             string
		request          *model.AuthorizationRequest
		context          func() *validator.Context
		loaderError      error
		skipLoad         bool
		expectReserve    bool
		reserveResult    *domain.ReserveResult
		reserveError     error
		expectedApproved bool
		expectedReason   model.ReasonCode
	}{
		{
			name:             "approve_within_all_limits",
			request:          testRequest(4000),
			context:          func() *validator.Context { return healthyContext(45000) },
			expectReserve:    true,
			reserveResult:    &domain.ReserveResult{WindowID: 1, TotalCents: 49000},
			expectedApproved: true,
			expectedReason:   model.ReasonApproved,
		},
		{
			name: "malformed_request_missing_user",
			request: &model.AuthorizationRequest{
				EventID:            "evt_123",
				AmountCents:        4000,
				Currency:           "USD",
				ConnectedAccountID: "acct_1",
			},
			skipLoad:       true,
			expectedReason: model.ReasonMalformedRequest,
		},
		{
			name:           "malformed_request_non_positive_amount",
			request:        testRequest(0),
			skipLoad:       true,
			expectedReason: model.ReasonMalformedRequest,
		},
		{
			name:    "unknown_user_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.User = nil
				return vctx
			},
			expectedReason: model.ReasonUserInvalid,
		},
		{
			name:    "suspended_user_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.User.Status = model.UserStatusSuspended
				return vctx
			},
			expectedReason: model.ReasonUserInvalid,
		},
		{
			// Identity fails and the velocity signal is high at the same time;
			// identity is earlier in the order, so its reason wins.
			name:    "first_failure_wins_over_fraud",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.User = nil
				vctx.RecentTransactions = recent(testLimits.FraudVelocityPerHour)
				return vctx
			},
			expectedReason: model.ReasonUserInvalid,
		},
		{
			name:    "no_subscription_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.Subscription = nil
				return vctx
			},
			expectedReason: model.ReasonNoActiveEntitlement,
		},
		{
			name:    "canceled_subscription_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.Subscription.Status = model.SubscriptionStatusCanceled
				return vctx
			},
			expectedReason: model.ReasonNoActiveEntitlement,
		},
		{
			name:             "transaction_limit_boundary_approves",
			request:          testRequest(testLimits.PerTransactionCents),
			context:          func() *validator.Context { return healthyContext(0) },
			expectReserve:    true,
			reserveResult:    &domain.ReserveResult{WindowID: 1, TotalCents: testLimits.PerTransactionCents},
			expectedApproved: true,
			expectedReason:   model.ReasonApproved,
		},
		{
			name:           "one_over_transaction_limit_denied",
			request:        testRequest(testLimits.PerTransactionCents + 1),
			context:        func() *validator.Context { return healthyContext(0) },
			expectedReason: model.ReasonExceedsTransactionLimit,
		},
		{
			name:             "period_limit_boundary_approves",
			request:          testRequest(15000),
			context:          func() *validator.Context { return healthyContext(85000) },
			expectReserve:    true,
			reserveResult:    &domain.ReserveResult{WindowID: 1, TotalCents: 100000},
			expectedApproved: true,
			expectedReason:   model.ReasonApproved,
		},
		{
			name:           "one_over_period_limit_denied",
			request:        testRequest(15001),
			context:        func() *validator.Context { return healthyContext(85000) },
			expectedReason: model.ReasonExceedsPeriodLimit,
		},
		{
			name:    "provider_charges_disabled_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.Provider.ChargesEnabled = false
				return vctx
			},
			expectedReason: model.ReasonProviderNotReady,
		},
		{
			name:    "unknown_provider_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.Provider = nil
				return vctx
			},
			expectedReason: model.ReasonProviderNotReady,
		},
		{
			name:    "velocity_fraud_denied",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.RecentTransactions = recent(testLimits.FraudVelocityPerHour)
				return vctx
			},
			expectedReason: model.ReasonFraudSuspected,
		},
		{
			// $51 on the free tier is under the platform per-transaction limit
			// but over the free tier ceiling.
			name:    "free_tier_ceiling_denied",
			request: testRequest(testLimits.FreeTierTransactionCents + 100),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.User.Tier = model.UserTierFree
				return vctx
			},
			expectedReason: model.ReasonFreeTierLimit,
		},
		{
			name:    "free_tier_boundary_approves",
			request: testRequest(testLimits.FreeTierTransactionCents),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.User.Tier = model.UserTierFree
				return vctx
			},
			expectReserve:    true,
			reserveResult:    &domain.ReserveResult{WindowID: 1, TotalCents: testLimits.FreeTierTransactionCents},
			expectedApproved: true,
			expectedReason:   model.ReasonApproved,
		},
		{
			// $30 first transaction with a new provider trips the $25 cold
			// start ceiling even though the user is otherwise unrestricted.
			name:    "first_provider_ceiling_denied",
			request: testRequest(3000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.Relationship.TransactionCount = 0
				return vctx
			},
			expectedReason: model.ReasonFirstTimeProviderLimit,
		},
		{
			name:    "first_provider_boundary_approves",
			request: testRequest(testLimits.FirstProviderTransactionCents),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.Relationship.TransactionCount = 0
				return vctx
			},
			expectReserve:    true,
			reserveResult:    &domain.ReserveResult{WindowID: 1, TotalCents: testLimits.FirstProviderTransactionCents},
			expectedApproved: true,
			expectedReason:   model.ReasonApproved,
		},
		{
			name:           "loader_failure_fails_closed",
			request:        testRequest(4000),
			loaderError:    assert.AnError,
			expectedReason: model.ReasonSystemError,
		},
		{
			name:           "reservation_failure_fails_closed",
			request:        testRequest(4000),
			context:        func() *validator.Context { return healthyContext(0) },
			expectReserve:  true,
			reserveError:   assert.AnError,
			expectedReason: model.ReasonSystemError,
		},
		{
			// A concurrent approval consumed the remaining headroom between
			// validation and reservation.
			name:           "reservation_race_denied",
			request:        testRequest(4000),
			context:        func() *validator.Context { return healthyContext(0) },
			expectReserve:  true,
			reserveResult:  &domain.ReserveResult{Exceeded: true, WindowID: 1, TotalCents: 99000},
			expectedReason: model.ReasonExceedsPeriodLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, m := newTestBusiness(ctrl, nil)
			passThroughStore(m)

			if !tc.skipLoad {
				if tc.loaderError != nil {
					m.loaders.EXPECT().LoadContext(gomock.Any(), tc.request).Return(nil, tc.loaderError)
				} else {
					m.loaders.EXPECT().LoadContext(gomock.Any(), tc.request).Return(tc.context(), nil)
				}
			}
			if tc.expectReserve {
				m.guard.EXPECT().
					ReserveSpend(gomock.Any(), tc.request, testLimits.PerPeriodCents).
					Return(tc.reserveResult, tc.reserveError)
			}
			m.audit.EXPECT().
				InsertAuditRecord(gomock.Any(), gomock.Any()).
				Return(audit.AuditRecord{}, nil)

			decision, err := b.Decide(context.Background(), tc.request)

			require.NoError(t, err)
			require.NotNil(t, decision)
			assert.Equal(t, tc.request.EventID, decision.EventID)
			assert.Equal(t, tc.expectedApproved, decision.Approved)
			assert.Equal(t, tc.expectedReason, decision.Reason)
			if tc.expectedApproved {
				assert.Equal(t, "subtrack_pro", decision.Metadata["approved_by"])
				assert.Equal(t, "high", decision.Metadata["validation_score"])
			}
		})
	}
}

func TestDecide_BlockedAccountDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBusiness(ctrl, []string{"acct_1"})
	passThroughStore(m)

	req := testRequest(4000)
	m.loaders.EXPECT().LoadContext(gomock.Any(), req).Return(healthyContext(0), nil)
	m.audit.EXPECT().InsertAuditRecord(gomock.Any(), gomock.Any()).Return(audit.AuditRecord{}, nil)

	decision, err := b.Decide(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, decision.Approved)
	assert.Equal(t, model.ReasonFraudSuspected, decision.Reason)
}

func TestDecide_MediumFraudSignalRecordedInMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Lower the outlier ceiling so an approvable amount still lands in the
	// elevated band (above half the ceiling but below it).
	limits := testLimits
	limits.FraudOutlierCents = 30000

	b, m := newTestBusiness(ctrl, nil)
	b.limits = limits
	b.ruleEngine = rules.NewEngine(rules.Default(limits))
	passThroughStore(m)

	req := testRequest(16000)
	vctx := healthyContext(0)
	vctx.Limits = limits

	m.loaders.EXPECT().LoadContext(gomock.Any(), req).Return(vctx, nil)
	m.guard.EXPECT().
		ReserveSpend(gomock.Any(), req, limits.PerPeriodCents).
		Return(&domain.ReserveResult{WindowID: 1, TotalCents: 16000}, nil)
	m.audit.EXPECT().InsertAuditRecord(gomock.Any(), gomock.Any()).Return(audit.AuditRecord{}, nil)

	decision, err := b.Decide(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, decision.Approved)
	assert.Equal(t, "elevated_amount", decision.Metadata["fraud_signal"])
	assert.NotEmpty(t, decision.Metadata["fraud_evidence"])
}

func TestDecide_RedeliveryServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBusiness(ctrl, nil)

	req := testRequest(4000)
	cached := &model.AuthorizationDecision{
		ID:       "dec_1",
		EventID:  req.EventID,
		Approved: true,
		Reason:   model.ReasonApproved,
	}

	// The store resolves the redelivery; the pipeline, guard and audit repo
	// are never touched.
	m.store.EXPECT().
		GetOrCreate(gomock.Any(), req.EventID, gomock.Any(), gomock.Any()).
		Return(cached, true, nil)

	decision, err := b.Decide(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, cached, decision)
}

func TestDecide_AuditWriteFailure(t *testing.T) {
	testCases := []struct {
		name           string
		request        *model.AuthorizationRequest
		context        func() *validator.Context
		expectReserve  bool
		releaseErr     error
		expectedReason model.ReasonCode
	}{
		{
			// Approved spend must never go unaudited: the decision is
			// downgraded to a closed failure and the reservation is backed
			// out so the window keeps no spend for a denied decision.
			name:           "approval_downgraded_and_reservation_released",
			request:        testRequest(4000),
			context:        func() *validator.Context { return healthyContext(0) },
			expectReserve:  true,
			expectedReason: model.ReasonSystemError,
		},
		{
			// The release failing does not resurrect the approval.
			name:           "release_failure_keeps_denial",
			request:        testRequest(4000),
			context:        func() *validator.Context { return healthyContext(0) },
			expectReserve:  true,
			releaseErr:     assert.AnError,
			expectedReason: model.ReasonSystemError,
		},
		{
			// A denial is already the safe outcome, so it survives the failed
			// audit write unchanged.
			name:    "denial_preserved",
			request: testRequest(4000),
			context: func() *validator.Context {
				vctx := healthyContext(0)
				vctx.User = nil
				return vctx
			},
			expectedReason: model.ReasonUserInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, m := newTestBusiness(ctrl, nil)
			passThroughStore(m)

			m.loaders.EXPECT().LoadContext(gomock.Any(), tc.request).Return(tc.context(), nil)
			if tc.expectReserve {
				m.guard.EXPECT().
					ReserveSpend(gomock.Any(), tc.request, testLimits.PerPeriodCents).
					Return(&domain.ReserveResult{WindowID: 1}, nil)
				m.guard.EXPECT().
					ReleaseSpend(gomock.Any(), tc.request).
					Return(tc.releaseErr)
			}
			m.audit.EXPECT().
				InsertAuditRecord(gomock.Any(), gomock.Any()).
				Return(audit.AuditRecord{}, assert.AnError)

			decision, err := b.Decide(context.Background(), tc.request)

			require.NoError(t, err)
			assert.False(t, decision.Approved)
			assert.Equal(t, tc.expectedReason, decision.Reason)
		})
	}
}

func TestDecide_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newTestBusiness(ctrl, nil)

	req := testRequest(testLimits.PerTransactionCents + 1)
	vctx := healthyContext(0)

	passThroughStore(m)
	passThroughStore(m)
	m.loaders.EXPECT().LoadContext(gomock.Any(), req).Return(vctx, nil).Times(2)
	m.audit.EXPECT().InsertAuditRecord(gomock.Any(), gomock.Any()).Return(audit.AuditRecord{}, nil).Times(2)

	first, err := b.Decide(context.Background(), req)
	require.NoError(t, err)
	second, err := b.Decide(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Approved, second.Approved)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, first.ReasonMessage, second.ReasonMessage)
}
