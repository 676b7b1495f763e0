package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/authorization/model"
	"encore.app/authorization/repository/spending"
)

// Guard is the interface the decision engine reserves spend through.
type Guard interface {
	ReserveSpend(ctx context.Context, req *model.AuthorizationRequest, periodLimitCents int64) (*ReserveResult, error)
	// ReleaseSpend backs out a reservation whose decision was ultimately not
	// approved. Releasing an event that was never reserved is a no-op.
	ReleaseSpend(ctx context.Context, req *model.AuthorizationRequest) error
}

// ReserveResult reports the outcome of an atomic spend reservation.
type ReserveResult struct {
	// Exceeded is true when the reservation would push the window past the
	// period ceiling. Nothing was written in that case.
	Exceeded bool
	// AlreadyRecorded is true when a ledger row for this event already exists
	// (redelivery residue); the window was not incremented again.
	AlreadyRecorded bool
	// NewWindow is true when this reservation lazily created the window.
	NewWindow bool

	WindowID    int32
	WorkflowID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalCents  int64
}

// SpendingGuard owns the transaction boundary for the spending window.
// The period ceiling re-check and the increment execute under the same row
// lock, so two concurrently approved transactions cannot both read a stale
// total and jointly exceed the ceiling.
type SpendingGuard struct {
	db        *pgxpool.Pool
	spendRepo *spending.Queries
}

// NewSpendingGuard creates a spending guard with database and repository access
func NewSpendingGuard(db *pgxpool.Pool, spendRepo *spending.Queries) *SpendingGuard {
	return &SpendingGuard{
		db:        db,
		spendRepo: spendRepo,
	}
}

// ReserveSpend locks the (user, period) window, re-checks the period ceiling
// and records the event in the spend ledger, all in one transaction. The unique
// event id on the ledger keeps the increment at-most-once per event.
func (g *SpendingGuard) ReserveSpend(ctx context.Context, req *model.AuthorizationRequest, periodLimitCents int64) (*ReserveResult, error) {
	tx, err := g.db.Begin(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start spend reservation"}
	}
	defer tx.Rollback(ctx)

	q := g.spendRepo.WithTx(tx)

	periodStart, periodEnd := model.CurrentPeriod(req.ReceivedAt)
	window, created, err := g.lockOrCreateWindow(ctx, q, req.UserID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	result := &ReserveResult{
		NewWindow:   created,
		WindowID:    window.ID,
		WorkflowID:  window.WorkflowID.String,
		PeriodStart: window.PeriodStart.Time,
		PeriodEnd:   window.PeriodEnd.Time,
		TotalCents:  window.TotalAmountCents,
	}

	if window.TotalAmountCents+req.AmountCents > periodLimitCents {
		result.Exceeded = true
		return result, nil
	}

	subscriptionID := pgtype.Text{String: req.SubscriptionID, Valid: req.SubscriptionID != ""}
	_, err = q.InsertSpendTransaction(ctx, spending.InsertSpendTransactionParams{
		EventID:           req.EventID,
		UserID:            req.UserID,
		ProviderAccountID: req.ConnectedAccountID,
		AmountCents:       req.AmountCents,
		Currency:          req.Currency,
		SubscriptionID:    subscriptionID,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			result.AlreadyRecorded = true
			return result, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to record spend transaction"}
	}

	updated, err := q.IncrementWindow(ctx, spending.IncrementWindowParams{
		ID:          window.ID,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to increment spending window"}
	}
	result.TotalCents = updated.TotalAmountCents

	if err := tx.Commit(ctx); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to commit spend reservation"}
	}

	return result, nil
}

// ReleaseSpend removes the event's ledger row and decrements its window, in
// one transaction under the same row lock ReserveSpend takes. The window may
// have rolled over since the reservation; the ledger row is deleted either way
// and the recalculation activity squares the closed window from the ledger.
func (g *SpendingGuard) ReleaseSpend(ctx context.Context, req *model.AuthorizationRequest) error {
	tx, err := g.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start spend release"}
	}
	defer tx.Rollback(ctx)

	q := g.spendRepo.WithTx(tx)

	periodStart, _ := model.CurrentPeriod(req.ReceivedAt)
	window, err := q.GetOpenWindowForUpdate(ctx, spending.GetOpenWindowForUpdateParams{
		UserID:      req.UserID,
		PeriodStart: pgtype.Timestamptz{Time: periodStart, Valid: true},
	})
	haveWindow := err == nil
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return &errs.Error{Code: errs.Internal, Message: "failed to lock spending window"}
	}

	deleted, err := q.DeleteSpendTransaction(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nothing was reserved for this event.
			return nil
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to remove spend transaction"}
	}

	if haveWindow {
		if _, err := q.DecrementWindow(ctx, spending.DecrementWindowParams{
			ID:          window.ID,
			AmountCents: deleted.AmountCents,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to decrement spending window"}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit spend release"}
	}

	return nil
}

// lockOrCreateWindow returns the open window for (userID, periodStart) locked
// FOR UPDATE, creating it lazily on the first transaction of the period. A
// concurrent creation loses on the unique (user_id, period_start) constraint
// and falls back to locking the winner's row.
func (g *SpendingGuard) lockOrCreateWindow(ctx context.Context, q *spending.Queries, userID string, periodStart, periodEnd time.Time) (spending.SpendingWindow, bool, error) {
	lockParams := spending.GetOpenWindowForUpdateParams{
		UserID:      userID,
		PeriodStart: pgtype.Timestamptz{Time: periodStart, Valid: true},
	}

	window, err := q.GetOpenWindowForUpdate(ctx, lockParams)
	if err == nil {
		return window, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return spending.SpendingWindow{}, false, &errs.Error{Code: errs.Internal, Message: "failed to lock spending window"}
	}

	window, err = q.CreateWindow(ctx, spending.CreateWindowParams{
		UserID:      userID,
		PeriodStart: pgtype.Timestamptz{Time: periodStart, Valid: true},
		PeriodEnd:   pgtype.Timestamptz{Time: periodEnd, Valid: true},
	})
	if err == nil {
		return window, true, nil
	}

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		window, err = q.GetOpenWindowForUpdate(ctx, lockParams)
		if err != nil {
			return spending.SpendingWindow{}, false, &errs.Error{Code: errs.Internal, Message: "failed to lock spending window"}
		}
		return window, false, nil
	}

	return spending.SpendingWindow{}, false, &errs.Error{Code: errs.Internal, Message: "failed to create spending window"}
}
