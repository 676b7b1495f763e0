package authorization

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"go.temporal.io/sdk/client"

	"encore.app/authorization/domain"
	"encore.app/authorization/model"
	"encore.app/authorization/repository/spending"
	"encore.app/authorization/workflow"
)

// spendNotifier tracks the spending period lifecycle in Temporal after an
// approval. It never blocks the decision path: the workflow interaction is
// fire-and-forget, and the period workflow heals any drift by recomputing the
// window from the spend ledger.
type spendNotifier struct {
	temporal client.Client
	spending spending.Querier
}

func (n *spendNotifier) SpendReserved(ctx context.Context, req *model.AuthorizationRequest, res *domain.ReserveResult) {
	workflowID := res.WorkflowID
	if workflowID == "" {
		workflowID = fmt.Sprintf("spending-%s-%s", req.UserID, res.PeriodStart.Format("2006-01"))
	}

	params := workflow.SpendingPeriodParams{
		WindowID:    res.WindowID,
		UserID:      req.UserID,
		PeriodStart: res.PeriodStart,
		PeriodEnd:   res.PeriodEnd,
	}
	signal := workflow.TransactionRecordedSignal{EventID: req.EventID}
	newWindow := res.NewWindow

	runAsync("signal-spending-period", func(ctx context.Context) error {
		options := client.StartWorkflowOptions{
			ID:        workflowID,
			TaskQueue: taskQueue,
		}

		// SignalWithStart covers both cases: the first transaction of a period
		// starts the workflow, later ones just signal it.
		_, err := n.temporal.SignalWithStartWorkflow(ctx, workflowID, workflow.TransactionRecordedSignalName, signal, options, workflow.SpendingPeriod, params)
		if err != nil {
			return fmt.Errorf("signal workflow %s: %w", workflowID, err)
		}

		if newWindow {
			return n.spending.SetWindowWorkflowID(ctx, spending.SetWindowWorkflowIDParams{
				ID:         res.WindowID,
				WorkflowID: pgtype.Text{String: workflowID, Valid: true},
			})
		}
		return nil
	})
}
