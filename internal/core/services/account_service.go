package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/dto"
)

// ErrAccountClass is returned for an account number outside classes 1-7.
var ErrAccountClass = errors.New("account number must start with a class digit 1-7")

// accountService provides chart-of-accounts operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account in a company's chart of accounts. The
// class is derived from the number, never taken from the caller. A VAT flag
// that does not match the class is accepted with a warning; some mixed
// accounts legitimately carry it.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	class := domain.ClassOf(req.Number)
	if class == "" {
		return nil, fmt.Errorf("%w: %q", ErrAccountClass, req.Number)
	}

	if _, err := s.accountRepo.FindAccountByNumber(ctx, companyID, req.Number); err == nil {
		return nil, fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, req.Number)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account number: %w", err)
	}

	if req.VATDeductible && !class.IsExpenseClass() {
		s.LogWarn(ctx, "VAT deductible flag on a non-charge account",
			slog.String("number", req.Number),
			slog.String("class", string(class)))
	}
	if req.VATCollected && !class.IsRevenueClass() {
		s.LogWarn(ctx, "VAT collected flag on a non-produit account",
			slog.String("number", req.Number),
			slog.String("class", string(class)))
	}

	subClass := ""
	if len(req.Number) >= 2 {
		subClass = req.Number[:2]
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		CompanyID:     companyID,
		Number:        req.Number,
		Label:         req.Label,
		Class:         class,
		SubClass:      subClass,
		VATDeductible: req.VATDeductible,
		VATCollected:  req.VATCollected,
		Description:   req.Description,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("number", req.Number))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("number", account.Number))
	return &account, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ListAccounts retrieves the chart of accounts for a company.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, companyID, includeInactive)
}

// UpdateAccount updates mutable account fields. The number, and therefore
// the class, is immutable once created.
func (s *accountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		account.Label = *req.Label
	}
	if req.VATDeductible != nil {
		account.VATDeductible = *req.VATDeductible
	}
	if req.VATCollected != nil {
		account.VATCollected = *req.VATCollected
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-deletes an account. Accounts referenced by journal
// entries are never physically removed.
func (s *accountService) DeactivateAccount(ctx context.Context, companyID, accountID string, userID string) error {
	if _, err := s.GetAccountByID(ctx, companyID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
