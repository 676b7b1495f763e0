package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// SpendingPeriodParams contains parameters for starting the period workflow
type SpendingPeriodParams struct {
	WindowID    int32     `json:"window_id"`
	UserID      string    `json:"user_id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

// SpendingPeriod manages the lifecycle of one user's spending window: it
// recalculates the aggregate as transactions are recorded and rolls the window
// over when the period elapses.
func SpendingPeriod(ctx workflow.Context, params SpendingPeriodParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting spending period workflow", "windowID", params.WindowID, "userID", params.UserID, "periodEnd", params.PeriodEnd)

	now := workflow.Now(ctx)
	remaining := params.PeriodEnd.Sub(now)
	if remaining <= 0 {
		logger.Warn("Period already elapsed, closing immediately", "windowID", params.WindowID)
		return closeWindow(ctx, params.WindowID)
	}

	timer := workflow.NewTimer(ctx, remaining)

	recordedCh := workflow.GetSignalChannel(ctx, TransactionRecordedSignalName)
	closeCh := workflow.GetSignalChannel(ctx, CloseWindowSignalName)

	windowClosed := false

	for !windowClosed {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(recordedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal TransactionRecordedSignal
			c.Receive(ctx, &signal)
			logger.Info("Transaction recorded, recalculating window", "windowID", params.WindowID, "eventID", signal.EventID)
			if err := recalculateWindow(ctx, params); err != nil {
				logger.Error("Failed to recalculate window", "windowID", params.WindowID, "error", err)
			}
		})

		selector.AddReceive(closeCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CloseWindowSignal
			c.Receive(ctx, &signal)
			logger.Info("Received manual close signal", "windowID", params.WindowID, "reason", signal.Reason)
			if err := closeWindow(ctx, params.WindowID); err != nil {
				logger.Error("Failed to close window manually", "windowID", params.WindowID, "error", err)
			} else {
				windowClosed = true
			}
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Period elapsed, rolling window over", "windowID", params.WindowID)
			if err := closeWindow(ctx, params.WindowID); err != nil {
				logger.Error("Failed to roll window over", "windowID", params.WindowID, "error", err)
			} else {
				windowClosed = true
			}
		})

		selector.Select(ctx)
	}

	logger.Info("Spending period workflow completed", "windowID", params.WindowID)
	return nil
}

// closeWindow executes the CloseWindow activity
func closeWindow(ctx workflow.Context, windowID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, CloseWindowActivity, windowID).Get(ctx, nil)
}

// recalculateWindow executes the RecalculateWindow activity
func recalculateWindow(ctx workflow.Context, params SpendingPeriodParams) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RecalculateWindowActivity, params).Get(ctx, nil)
}
