package repositories

import (
	"context"
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by company and account number.
	FindAccountByNumber(ctx context.Context, companyID, number string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts for a company, ordered by
	// account number. Inactive accounts are included when includeInactive.
	ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error)

	// LabelsByNumber returns a map of account number to label for a company.
	LabelsByNumber(ctx context.Context, companyID string) (map[string]string, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates mutable fields of an account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount soft-deletes an account (actif=false). Accounts
	// referenced by journal entries are never physically removed.
	DeactivateAccount(ctx context.Context, accountID string, updatedBy string, updatedAt time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
