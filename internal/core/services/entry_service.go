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

var (
	// ErrEntryNoLines is returned for an entry without any line.
	ErrEntryNoLines = errors.New("journal entry must have at least one line")
	// ErrLineBothSides is returned when a line carries both a debit and a credit.
	ErrLineBothSides = errors.New("entry line must not carry both debit and credit")
	// ErrLineNegative is returned for a negative debit or credit amount.
	ErrLineNegative = errors.New("entry line amounts must not be negative")
	// ErrEntryNotBalanced guards the reconciliation transition.
	ErrEntryNotBalanced = errors.New("unbalanced entry cannot be reconciled")
	// ErrAccountUnknown is returned when a line references an account absent
	// from the company's chart of accounts.
	ErrAccountUnknown = errors.New("unknown account number")
)

// entryService provides journal entry operations.
type entryService struct {
	BaseService
	entryRepo   portsrepo.EntryRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewEntryService creates a new journal entry service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// Ensure entryService implements the EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// validateLines checks structural line invariants: at most one of
// debit/credit non-zero, no negative amounts, known active accounts.
func (s *entryService) validateLines(ctx context.Context, companyID string, lines []dto.CreateEntryLineRequest) error {
	if len(lines) == 0 {
		return ErrEntryNoLines
	}

	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d", ErrLineNegative, i+1)
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d on account %s", ErrLineBothSides, i+1, line.AccountNumber)
		}
	}

	// Chart-of-accounts lookups only run once every line is structurally sound.
	for _, line := range lines {
		account, err := s.accountRepo.FindAccountByNumber(ctx, companyID, line.AccountNumber)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrAccountUnknown, line.AccountNumber)
			}
			return fmt.Errorf("failed to look up account %s: %w", line.AccountNumber, err)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, line.AccountNumber)
		}
	}
	return nil
}

func (s *entryService) buildEntry(companyID string, req dto.CreateEntryRequest, creatorUserID string, now time.Time) domain.JournalEntry {
	entryID := uuid.NewString()
	lines := make([]domain.EntryLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.EntryLine{
			LineID:        uuid.NewString(),
			EntryID:       entryID,
			AccountNumber: l.AccountNumber,
			Label:         l.Label,
			Debit:         l.Debit,
			Credit:        l.Credit,
		}
	}

	return domain.JournalEntry{
		EntryID:        entryID,
		CompanyID:      companyID,
		EntryDate:      req.EntryDate,
		DocumentNumber: req.DocumentNumber,
		Label:          req.Label,
		SourceType:     req.SourceType,
		Lines:          lines,
		Status:         domain.EntryValidated,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

// CreateEntry validates and persists a new journal entry. An unbalanced
// entry is accepted and flagged, never silently corrected; it simply can
// never be reconciled.
func (s *entryService) CreateEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if err := s.validateLines(ctx, companyID, req.Lines); err != nil {
		return nil, err
	}

	entry := s.buildEntry(companyID, req, creatorUserID, time.Now().UTC())

	if !entry.IsBalanced() {
		s.LogWarn(ctx, "Creating unbalanced journal entry",
			slog.String("entry_id", entry.EntryID),
			slog.String("total_debit", entry.TotalDebit().String()),
			slog.String("total_credit", entry.TotalCredit().String()))
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("document_number", entry.DocumentNumber),
		slog.String("source_type", string(entry.SourceType)))
	return &entry, nil
}

// GetEntryByID retrieves a specific journal entry.
func (s *entryService) GetEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// ReconcileEntry transitions a validated entry to RECONCILED (lettrée).
// The balanced invariant is enforced here: an unbalanced entry must never
// reach RECONCILED.
func (s *entryService) ReconcileEntry(ctx context.Context, companyID, entryID string, userID string) error {
	entry, err := s.GetEntryByID(ctx, companyID, entryID)
	if err != nil {
		return err
	}

	if entry.Status == domain.EntryReconciled {
		return fmt.Errorf("%w: entry %s already reconciled", apperrors.ErrValidation, entryID)
	}
	if !entry.IsBalanced() {
		return fmt.Errorf("%w: entry %s (debit %s, credit %s)",
			ErrEntryNotBalanced, entryID, entry.TotalDebit().String(), entry.TotalCredit().String())
	}

	now := time.Now().UTC()
	if err := s.entryRepo.UpdateEntryStatus(ctx, entryID, domain.EntryReconciled, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to reconcile entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to reconcile entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry reconciled", slog.String("entry_id", entryID))
	return nil
}

// CreateCorrectiveEntry persists a corrective entry superseding an existing
// one. Entries are never physically deleted; corrections are new entries
// linked back to the original.
func (s *entryService) CreateCorrectiveEntry(ctx context.Context, companyID, originalEntryID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, companyID, originalEntryID)
	if err != nil {
		return nil, fmt.Errorf("original entry lookup failed: %w", err)
	}

	if err := s.validateLines(ctx, companyID, req.Lines); err != nil {
		return nil, err
	}

	entry := s.buildEntry(companyID, req, creatorUserID, time.Now().UTC())
	entry.CorrectsEntryID = original.EntryID

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save corrective entry",
			slog.String("entry_id", entry.EntryID),
			slog.String("corrects_entry_id", original.EntryID))
		return nil, fmt.Errorf("failed to save corrective entry: %w", err)
	}

	s.LogInfo(ctx, "Corrective entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("corrects_entry_id", original.EntryID))
	return &entry, nil
}
