package workflow

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/authorization/repository/spending"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	SpendRepo spending.Querier
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(spendRepo spending.Querier) {
	activityDeps = &ActivityDependencies{
		SpendRepo: spendRepo,
	}
}

// CloseWindowActivity rolls a spending window over at period end
func CloseWindowActivity(ctx context.Context, windowID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing close window activity", "windowID", windowID)

	if activityDeps == nil || activityDeps.SpendRepo == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if _, err := activityDeps.SpendRepo.CloseWindow(ctx, windowID); err != nil {
		logger.Error("Failed to close window", "windowID", windowID, "error", err)
		return err
	}

	logger.Info("Successfully closed window", "windowID", windowID)
	return nil
}

// RecalculateWindowActivity recomputes the window aggregate from the spend ledger
func RecalculateWindowActivity(ctx context.Context, params SpendingPeriodParams) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing recalculate window activity", "windowID", params.WindowID)

	if activityDeps == nil || activityDeps.SpendRepo == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	sum, err := activityDeps.SpendRepo.SumWindowTransactions(ctx, spending.SumWindowTransactionsParams{
		UserID:      params.UserID,
		PeriodStart: pgtype.Timestamptz{Time: params.PeriodStart, Valid: true},
		PeriodEnd:   pgtype.Timestamptz{Time: params.PeriodEnd, Valid: true},
	})
	if err != nil {
		logger.Error("Failed to sum window transactions", "windowID", params.WindowID, "error", err)
		return err
	}

	if _, err := activityDeps.SpendRepo.RecalculateWindow(ctx, spending.RecalculateWindowParams{
		ID:               params.WindowID,
		TotalAmountCents: sum.TotalAmountCents,
		TransactionCount: int32(sum.TransactionCount),
	}); err != nil {
		logger.Error("Failed to recalculate window", "windowID", params.WindowID, "error", err)
		return temporal.NewNonRetryableApplicationError("failed to recalculate window", "WINDOW_RECALCULATE_FAILED", err)
	}

	logger.Info("Successfully recalculated window", "windowID", params.WindowID)
	return nil
}
