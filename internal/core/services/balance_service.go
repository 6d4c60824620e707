package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService implements the BalanceService interface.
type balanceService struct {
	BaseService
	entryRepo   portsrepo.EntryReader
	accountRepo portsrepo.AccountReader
}

// NewBalanceService creates a new balance service.
func NewBalanceService(entryRepo portsrepo.EntryReader, accountRepo portsrepo.AccountReader) portssvc.BalanceService {
	return &balanceService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// Ensure balanceService implements the BalanceService interface
var _ portssvc.BalanceService = (*balanceService)(nil)

// ComputeBalance aggregates all entry lines of the period into one row per
// account. Read-only and all-or-nothing: a storage failure aborts the whole
// query, partial results are never returned.
func (s *balanceService) ComputeBalance(ctx context.Context, companyID string, from, to time.Time) ([]domain.BalanceRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end %s precedes start %s", apperrors.ErrInvalidRange, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	entries, err := s.entryRepo.ListEntriesByPeriod(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for balance",
			slog.String("company_id", companyID),
			slog.String("from", from.Format("2006-01-02")),
			slog.String("to", to.Format("2006-01-02")))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	labels, err := s.accountRepo.LabelsByNumber(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account labels", slog.String("company_id", companyID))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	rows := AggregateEntries(entries, labels)

	s.LogInfo(ctx, "Balance computed",
		slog.String("company_id", companyID),
		slog.Int("entry_count", len(entries)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ListEntries returns the raw journal over the same period, the view against
// which the balance must reconcile.
func (s *balanceService) ListEntries(ctx context.Context, companyID string, from, to time.Time) ([]domain.JournalEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end %s precedes start %s", apperrors.ErrInvalidRange, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	entries, err := s.entryRepo.ListEntriesByPeriod(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("company_id", companyID))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return entries, nil
}

// AggregateEntries folds every line of every entry into a per-account
// accumulator and emits one BalanceRow per distinct account number, sorted by
// class then number. Zero-solde rows are retained; callers may filter.
// Pure function of its inputs, exported for direct testing.
func AggregateEntries(entries []domain.JournalEntry, labels map[string]string) []domain.BalanceRow {
	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)

	for _, entry := range entries {
		for _, line := range entry.Lines {
			debits[line.AccountNumber] = debits[line.AccountNumber].Add(line.Debit)
			credits[line.AccountNumber] = credits[line.AccountNumber].Add(line.Credit)
		}
	}

	rows := make([]domain.BalanceRow, 0, len(debits))
	for number := range debits {
		debit := debits[number]
		credit := credits[number]
		rows = append(rows, domain.BalanceRow{
			AccountNumber: number,
			Label:         labels[number],
			Class:         domain.ClassOf(number),
			TotalDebit:    debit,
			TotalCredit:   credit,
			Solde:         debit.Sub(credit),
		})
	}

	// Class first, then number; deterministic across calls for the same input.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Class != rows[j].Class {
			return rows[i].Class < rows[j].Class
		}
		return rows[i].AccountNumber < rows[j].AccountNumber
	})

	return rows
}

// FilterBalanceRows applies a pure post-filter over an aggregated row set.
// It never alters the aggregation itself, so unfiltered totals still
// reconcile against the journal for the same period.
func FilterBalanceRows(rows []domain.BalanceRow, filter domain.BalanceFilter) []domain.BalanceRow {
	filtered := make([]domain.BalanceRow, 0, len(rows))
	for _, row := range rows {
		if filter.Class != "" && row.Class != filter.Class {
			continue
		}
		switch filter.Side {
		case domain.SideDebtor:
			if !row.Solde.IsPositive() {
				continue
			}
		case domain.SideCreditor:
			if !row.Solde.IsNegative() {
				continue
			}
		case domain.SideZero:
			if !row.Solde.IsZero() {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}
