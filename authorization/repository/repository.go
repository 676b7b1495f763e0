package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/authorization/repository/accounts"
	"encore.app/authorization/repository/audit"
	"encore.app/authorization/repository/providers"
	"encore.app/authorization/repository/spending"
)

// Repository combines all domain-specific queriers
type Repository struct {
	Accounts  accounts.Querier
	Providers providers.Querier
	Spending  spending.Querier
	Audit     audit.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Accounts:  accounts.New(db),
		Providers: providers.New(db),
		Spending:  spending.New(db),
		Audit:     audit.New(db),
	}
}
