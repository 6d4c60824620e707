package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// EntryRepository implements journal entry persistence on PostgreSQL.
type EntryRepository struct {
	BaseRepository
}

// NewEntryRepository creates a new journal entry repository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{BaseRepository{Pool: pool}}
}

// Ensure EntryRepository implements the port with transactions
var _ portsrepo.EntryRepositoryWithTx = (*EntryRepository)(nil)

const entryColumns = `entry_id, company_id, entry_date, document_number, label,
	source_type, status, COALESCE(corrects_entry_id, ''),
	created_at, created_by, last_updated_at, last_updated_by`

// FindEntryByID retrieves a specific journal entry with its lines.
func (r *EntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM journal_entries WHERE entry_id = $1`, entryColumns)

	var e domain.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&e.EntryID, &e.CompanyID, &e.EntryDate, &e.DocumentNumber, &e.Label,
		&e.SourceType, &e.Status, &e.CorrectsEntryID,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}

	lines, err := r.loadLines(ctx, []string{e.EntryID})
	if err != nil {
		return nil, err
	}
	e.Lines = lines[e.EntryID]
	return &e, nil
}

// ListEntriesByPeriod retrieves all journal entries with their lines for a
// company in [from, to] inclusive, ordered by entry date then document number.
func (r *EntryRepository) ListEntriesByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]domain.JournalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM journal_entries
		WHERE company_id = $1 AND entry_date >= $2 AND entry_date <= $3
		ORDER BY entry_date, document_number`, entryColumns)

	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	var ids []string
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(
			&e.EntryID, &e.CompanyID, &e.EntryDate, &e.DocumentNumber, &e.Label,
			&e.SourceType, &e.Status, &e.CorrectsEntryID,
			&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
		); err != nil {
			return nil, translateError(err)
		}
		entries = append(entries, e)
		ids = append(ids, e.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	linesByEntry, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}
	return entries, nil
}

// loadLines fetches the lines of a set of entries in one round trip.
func (r *EntryRepository) loadLines(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error) {
	query := `SELECT line_id, entry_id, account_number, label, debit, credit
		FROM entry_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_id`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	byEntry := make(map[string][]domain.EntryLine, len(entryIDs))
	for rows.Next() {
		var l domain.EntryLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.AccountNumber, &l.Label, &l.Debit, &l.Credit); err != nil {
			return nil, translateError(err)
		}
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l)
	}
	return byEntry, rows.Err()
}

// SaveEntry persists an entry and its lines atomically.
func (r *EntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var correctsEntryID *string
	if entry.CorrectsEntryID != "" {
		correctsEntryID = &entry.CorrectsEntryID
	}

	_, err = tx.Exec(ctx, `INSERT INTO journal_entries
		(entry_id, company_id, entry_date, document_number, label, source_type,
		 status, corrects_entry_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.EntryID, entry.CompanyID, entry.EntryDate, entry.DocumentNumber,
		entry.Label, entry.SourceType, entry.Status, correctsEntryID,
		entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err)
	}

	for _, line := range entry.Lines {
		_, err = tx.Exec(ctx, `INSERT INTO entry_lines
			(line_id, entry_id, account_number, label, debit, credit)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.LineID, line.EntryID, line.AccountNumber, line.Label, line.Debit, line.Credit,
		)
		if err != nil {
			return translateError(err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateEntryStatus transitions the status of an entry.
func (r *EntryRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE journal_entries
		SET status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE entry_id = $1`,
		entryID, status, updatedBy, updatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
