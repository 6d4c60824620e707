package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// RelanceRepository implements dunning reminder persistence on PostgreSQL.
// The UNIQUE(invoice_id, tier) constraint backs the generation idempotency.
type RelanceRepository struct {
	BaseRepository
}

// NewRelanceRepository creates a new reminder repository.
func NewRelanceRepository(pool *pgxpool.Pool) *RelanceRepository {
	return &RelanceRepository{BaseRepository{Pool: pool}}
}

// Ensure RelanceRepository implements the facade
var _ portsrepo.RelanceRepositoryFacade = (*RelanceRepository)(nil)

const relanceColumns = `relance_id, company_id, invoice_id, client_id, client_name,
	tier, days_overdue, amount, generated_at, status,
	COALESCE(template_id, ''), sent_at, COALESCE(last_error, ''),
	created_at, created_by, last_updated_at, last_updated_by`

func scanRelance(row interface{ Scan(dest ...any) error }) (*domain.Relance, error) {
	var rel domain.Relance
	err := row.Scan(
		&rel.RelanceID, &rel.CompanyID, &rel.InvoiceID, &rel.ClientID, &rel.ClientName,
		&rel.Tier, &rel.DaysOverdue, &rel.Amount, &rel.GeneratedAt, &rel.Status,
		&rel.TemplateID, &rel.SentAt, &rel.LastError,
		&rel.CreatedAt, &rel.CreatedBy, &rel.LastUpdatedAt, &rel.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &rel, nil
}

// FindRelanceByID retrieves a reminder by its unique identifier.
func (r *RelanceRepository) FindRelanceByID(ctx context.Context, relanceID string) (*domain.Relance, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+relanceColumns+` FROM relances WHERE relance_id = $1`, relanceID)
	return scanRelance(row)
}

// FindRelanceByInvoiceAndTier retrieves the reminder for the idempotency key
// (invoiceID, tier), or ErrNotFound when none was generated yet.
func (r *RelanceRepository) FindRelanceByInvoiceAndTier(ctx context.Context, invoiceID string, tier domain.DunningTier) (*domain.Relance, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+relanceColumns+` FROM relances WHERE invoice_id = $1 AND tier = $2`,
		invoiceID, tier)
	return scanRelance(row)
}

// ListRelancesByCompany retrieves reminders for a company, newest first,
// optionally restricted to one status. limit <= 0 means no limit.
func (r *RelanceRepository) ListRelancesByCompany(ctx context.Context, companyID string, status domain.RelanceStatus, limit, offset int) ([]domain.Relance, error) {
	query := `SELECT ` + relanceColumns + ` FROM relances WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY generated_at DESC`
	if limit > 0 {
		query += ` LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var relances []domain.Relance
	for rows.Next() {
		rel, err := scanRelance(rows)
		if err != nil {
			return nil, err
		}
		relances = append(relances, *rel)
	}
	return relances, rows.Err()
}

// SaveRelance persists a newly generated reminder. A duplicate
// (invoice_id, tier) pair surfaces as ErrDuplicate.
func (r *RelanceRepository) SaveRelance(ctx context.Context, relance domain.Relance) error {
	var templateID *string
	if relance.TemplateID != "" {
		templateID = &relance.TemplateID
	}

	_, err := r.Pool.Exec(ctx, `INSERT INTO relances
		(relance_id, company_id, invoice_id, client_id, client_name, tier,
		 days_overdue, amount, generated_at, status, template_id, sent_at, last_error,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		relance.RelanceID, relance.CompanyID, relance.InvoiceID, relance.ClientID,
		relance.ClientName, relance.Tier, relance.DaysOverdue, relance.Amount,
		relance.GeneratedAt, relance.Status, templateID, relance.SentAt, nullable(relance.LastError),
		relance.CreatedAt, relance.CreatedBy, relance.LastUpdatedAt, relance.LastUpdatedBy,
	)
	return translateError(err)
}

// UpdateRelanceOutcome records the result of a send attempt in one write.
func (r *RelanceRepository) UpdateRelanceOutcome(ctx context.Context, relanceID string, status domain.RelanceStatus, templateID string, sentAt *time.Time, lastError string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE relances
		SET status = $2, template_id = $3, sent_at = $4, last_error = $5, last_updated_at = NOW()
		WHERE relance_id = $1`,
		relanceID, status, nullable(templateID), sentAt, nullable(lastError),
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
