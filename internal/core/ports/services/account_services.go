package services

import (
	"context"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/dto"
)

// AccountSvcFacade defines chart-of-accounts operations.
type AccountSvcFacade interface {
	// CreateAccount creates a new account in a company's chart of accounts.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves an account by its ID.
	GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts for a company.
	ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error)

	// UpdateAccount updates mutable account fields.
	UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount soft-deletes an account (actif=false).
	DeactivateAccount(ctx context.Context, companyID, accountID string, userID string) error
}
