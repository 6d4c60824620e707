package services

import (
	"context"

	"github.com/heliowash/backoffice/internal/core/domain"
)

// CompanySvcFacade defines legal entity (société) operations.
type CompanySvcFacade interface {
	// GetCompanyByID retrieves a company by ID.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves all active companies of the group.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// GoogleOAuthSvcFacade defines the Google sign-in operations used by the
// OAuth handler.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForIdentity exchanges an authorization code for a verified
	// Google identity (subject, email, name, email_verified).
	ExchangeCodeForIdentity(ctx context.Context, code string) (*GoogleIdentity, error)
}

// GoogleIdentity is the subset of a validated Google ID token the backend
// needs to create or look up an operator account.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}
