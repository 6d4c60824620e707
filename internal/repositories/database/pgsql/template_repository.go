package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// TemplateRepository implements reminder template persistence on PostgreSQL.
type TemplateRepository struct {
	BaseRepository
}

// NewTemplateRepository creates a new template repository.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{BaseRepository{Pool: pool}}
}

// Ensure TemplateRepository implements the facade
var _ portsrepo.TemplateRepositoryFacade = (*TemplateRepository)(nil)

const templateColumns = `template_id, company_id, tier, name, subject,
	body_html, body_text, attach_pdf, cc_internal, is_active, usage_count,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTemplate(row interface{ Scan(dest ...any) error }) (*domain.ReminderTemplate, error) {
	var t domain.ReminderTemplate
	err := row.Scan(
		&t.TemplateID, &t.CompanyID, &t.Tier, &t.Name, &t.Subject,
		&t.BodyHTML, &t.BodyText, &t.AttachPDF, &t.CCInternal, &t.IsActive, &t.UsageCount,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

// FindTemplateByID retrieves a template by its unique identifier.
func (r *TemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.ReminderTemplate, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM reminder_templates WHERE template_id = $1`, templateID)
	return scanTemplate(row)
}

// FindActiveTemplateByTier retrieves the active template for a company and
// tier, or ErrNotFound when none is active.
func (r *TemplateRepository) FindActiveTemplateByTier(ctx context.Context, companyID string, tier domain.DunningTier) (*domain.ReminderTemplate, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM reminder_templates
		 WHERE company_id = $1 AND tier = $2 AND is_active`,
		companyID, tier)
	return scanTemplate(row)
}

// ListTemplates retrieves all templates for a company ordered by tier.
func (r *TemplateRepository) ListTemplates(ctx context.Context, companyID string) ([]domain.ReminderTemplate, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+templateColumns+` FROM reminder_templates
		 WHERE company_id = $1 ORDER BY tier, created_at DESC`,
		companyID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var templates []domain.ReminderTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// SaveTemplate persists a new template.
func (r *TemplateRepository) SaveTemplate(ctx context.Context, template domain.ReminderTemplate) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO reminder_templates
		(template_id, company_id, tier, name, subject, body_html, body_text,
		 attach_pdf, cc_internal, is_active, usage_count,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		template.TemplateID, template.CompanyID, template.Tier, template.Name,
		template.Subject, template.BodyHTML, template.BodyText,
		template.AttachPDF, template.CCInternal, template.IsActive, template.UsageCount,
		template.CreatedAt, template.CreatedBy, template.LastUpdatedAt, template.LastUpdatedBy,
	)
	return translateError(err)
}

// UpdateTemplate updates mutable fields of a template.
func (r *TemplateRepository) UpdateTemplate(ctx context.Context, template domain.ReminderTemplate) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE reminder_templates
		SET name = $2, subject = $3, body_html = $4, body_text = $5,
		    attach_pdf = $6, cc_internal = $7, is_active = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE template_id = $1`,
		template.TemplateID, template.Name, template.Subject, template.BodyHTML,
		template.BodyText, template.AttachPDF, template.CCInternal, template.IsActive,
		template.LastUpdatedAt, template.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementTemplateUsage bumps the usage counter after a dispatch.
func (r *TemplateRepository) IncrementTemplateUsage(ctx context.Context, templateID string) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE reminder_templates SET usage_count = usage_count + 1 WHERE template_id = $1`,
		templateID)
	return translateError(err)
}
