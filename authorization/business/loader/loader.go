package loader

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"encore.app/authorization/business/validator"
	"encore.app/authorization/model"
	"encore.app/authorization/repository"
	"encore.app/authorization/repository/spending"
)

// Loaders assembles the read-only context snapshot a request is validated
// against. A missing row is normal context (the validators deny it); only an
// unreachable or slow data source is an error, which the orchestrator treats
// as a system failure and fails closed on.
type Loaders interface {
	LoadContext(ctx context.Context, req *model.AuthorizationRequest) (*validator.Context, error)
}

type loaders struct {
	repo    *repository.Repository
	limits  model.Limits
	timeout time.Duration
}

// New creates loaders over the repository. timeout bounds each individual
// load so a degraded data source cannot blow the processor's time budget.
func New(repo *repository.Repository, limits model.Limits, timeout time.Duration) Loaders {
	return &loaders{
		repo:    repo,
		limits:  limits,
		timeout: timeout,
	}
}

func (l *loaders) LoadContext(ctx context.Context, req *model.AuthorizationRequest) (*validator.Context, error) {
	vctx := &validator.Context{
		Limits: l.limits,
		Relationship: model.RelationshipStats{
			UserID:            req.UserID,
			ProviderAccountID: req.ConnectedAccountID,
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return l.withTimeout(gctx, func(ctx context.Context) error {
			user, err := l.repo.Accounts.GetUserAccount(ctx, req.UserID)
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			if err != nil {
				return err
			}
			vctx.User = &model.UserAccount{
				ID:        user.ID,
				Status:    model.UserStatus(user.Status),
				Tier:      model.UserTier(user.Tier),
				CreatedAt: user.CreatedAt.Time,
			}
			return nil
		})
	})

	g.Go(func() error {
		return l.withTimeout(gctx, func(ctx context.Context) error {
			sub, err := l.repo.Accounts.GetActiveSubscription(ctx, req.UserID)
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			if err != nil {
				return err
			}
			vctx.Subscription = &model.Subscription{
				ID:        sub.ID,
				UserID:    sub.UserID,
				Status:    model.SubscriptionStatus(sub.Status),
				Plan:      sub.Plan.String,
				CreatedAt: sub.CreatedAt.Time,
			}
			return nil
		})
	})

	g.Go(func() error {
		return l.withTimeout(gctx, func(ctx context.Context) error {
			periodStart, _ := model.CurrentPeriod(req.ReceivedAt)
			window, err := l.repo.Spending.GetOpenWindow(ctx, spending.GetOpenWindowParams{
				UserID:      req.UserID,
				PeriodStart: pgtype.Timestamptz{Time: periodStart, Valid: true},
			})
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			if err != nil {
				return err
			}
			vctx.Window = convertWindow(window)
			return nil
		})
	})

	g.Go(func() error {
		return l.withTimeout(gctx, func(ctx context.Context) error {
			provider, err := l.repo.Providers.GetProviderAccount(ctx, req.ConnectedAccountID)
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			if err != nil {
				return err
			}
			vctx.Provider = &model.ProviderAccount{
				AccountID:      provider.AccountID,
				ChargesEnabled: provider.ChargesEnabled,
				PayoutsEnabled: provider.PayoutsEnabled,
				UpdatedAt:      provider.UpdatedAt.Time,
			}
			return nil
		})
	})

	g.Go(func() error {
		return l.withTimeout(gctx, func(ctx context.Context) error {
			count, err := l.repo.Spending.CountUserProviderTransactions(ctx, spending.CountUserProviderTransactionsParams{
				UserID:            req.UserID,
				ProviderAccountID: req.ConnectedAccountID,
			})
			if err != nil {
				return err
			}
			vctx.Relationship.TransactionCount = count
			return nil
		})
	})

	g.Go(func() error {
		return l.withTimeout(gctx, func(ctx context.Context) error {
			since := req.ReceivedAt.Add(-time.Hour)
			recent, err := l.repo.Spending.ListRecentTransactions(ctx, spending.ListRecentTransactionsParams{
				UserID: req.UserID,
				Since:  pgtype.Timestamptz{Time: since, Valid: true},
			})
			if err != nil {
				return err
			}
			vctx.RecentTransactions = convertTransactions(recent)
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return vctx, nil
}

func (l *loaders) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return fn(ctx)
}

func convertWindow(w spending.SpendingWindow) *model.SpendingWindow {
	window := &model.SpendingWindow{
		ID:               w.ID,
		UserID:           w.UserID,
		PeriodStart:      w.PeriodStart.Time,
		PeriodEnd:        w.PeriodEnd.Time,
		TotalAmountCents: w.TotalAmountCents,
		TransactionCount: w.TransactionCount,
		Status:           model.SpendingWindowStatus(w.Status),
		CreatedAt:        w.CreatedAt.Time,
		UpdatedAt:        w.UpdatedAt.Time,
	}
	if w.WorkflowID.Valid {
		window.WorkflowID = &w.WorkflowID.String
	}
	return window
}

func convertTransactions(rows []spending.SpendTransaction) []model.SpendTransaction {
	items := make([]model.SpendTransaction, 0, len(rows))
	for _, row := range rows {
		item := model.SpendTransaction{
			ID:                row.ID,
			EventID:           row.EventID,
			UserID:            row.UserID,
			ProviderAccountID: row.ProviderAccountID,
			AmountCents:       row.AmountCents,
			Currency:          row.Currency,
			CreatedAt:         row.CreatedAt.Time,
		}
		if row.SubscriptionID.Valid {
			item.SubscriptionID = &row.SubscriptionID.String
		}
		items = append(items, item)
	}
	return items
}
