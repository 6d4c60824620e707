package services

import (
	"context"
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
)

// BalanceService defines the accounting aggregation operations.
type BalanceService interface {
	// ComputeBalance aggregates all journal entry lines of a company over an
	// inclusive date range into one BalanceRow per account, ordered by
	// account class then number. The call is read-only and all-or-nothing:
	// a storage failure returns no partial rows.
	ComputeBalance(ctx context.Context, companyID string, from, to time.Time) ([]domain.BalanceRow, error)

	// ListEntries returns the raw journal entries for the same range, the
	// journal view against which the balance must reconcile.
	ListEntries(ctx context.Context, companyID string, from, to time.Time) ([]domain.JournalEntry, error)
}
