package services

import (
	"context"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/dto"
)

// EntryReaderSvc defines read operations for journal entries.
type EntryReaderSvc interface {
	// GetEntryByID retrieves a specific journal entry by its ID.
	GetEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)
}

// EntryWriterSvc defines write operations for journal entries.
type EntryWriterSvc interface {
	// CreateEntry validates and persists a new journal entry with its lines.
	CreateEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// ReconcileEntry transitions a validated, balanced entry to RECONCILED.
	ReconcileEntry(ctx context.Context, companyID, entryID string, userID string) error

	// CreateCorrectiveEntry persists a corrective entry superseding an
	// existing one; the original is never modified or deleted.
	CreateCorrectiveEntry(ctx context.Context, companyID, originalEntryID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
}

// EntrySvcFacade combines all journal-entry service interfaces.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
