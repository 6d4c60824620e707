package repositories

import (
	"context"
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
)

// RelanceReader defines read operations for dunning reminder data.
type RelanceReader interface {
	// FindRelanceByID retrieves a reminder by its unique identifier.
	FindRelanceByID(ctx context.Context, relanceID string) (*domain.Relance, error)

	// FindRelanceByInvoiceAndTier retrieves the reminder for the idempotency
	// key (invoiceID, tier), or ErrNotFound when none was generated yet.
	FindRelanceByInvoiceAndTier(ctx context.Context, invoiceID string, tier domain.DunningTier) (*domain.Relance, error)

	// ListRelancesByCompany retrieves reminders for a company, newest first,
	// optionally restricted to one status.
	ListRelancesByCompany(ctx context.Context, companyID string, status domain.RelanceStatus, limit, offset int) ([]domain.Relance, error)
}

// RelanceWriter defines write operations for dunning reminder data.
type RelanceWriter interface {
	// SaveRelance persists a newly generated reminder.
	SaveRelance(ctx context.Context, relance domain.Relance) error

	// UpdateRelanceOutcome records the result of a send attempt in a single
	// atomic write: status plus template id, sent timestamp and error message.
	UpdateRelanceOutcome(ctx context.Context, relanceID string, status domain.RelanceStatus, templateID string, sentAt *time.Time, lastError string) error
}

// TemplateReader defines read operations for reminder templates.
type TemplateReader interface {
	// FindTemplateByID retrieves a template by its unique identifier.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.ReminderTemplate, error)

	// FindActiveTemplateByTier retrieves the active template for a company
	// and tier, or ErrNotFound when none is active.
	FindActiveTemplateByTier(ctx context.Context, companyID string, tier domain.DunningTier) (*domain.ReminderTemplate, error)

	// ListTemplates retrieves all templates for a company ordered by tier.
	ListTemplates(ctx context.Context, companyID string) ([]domain.ReminderTemplate, error)
}

// TemplateWriter defines write operations for reminder templates.
type TemplateWriter interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.ReminderTemplate) error

	// UpdateTemplate updates mutable fields of a template.
	UpdateTemplate(ctx context.Context, template domain.ReminderTemplate) error

	// IncrementTemplateUsage bumps the usage counter after a dispatch.
	IncrementTemplateUsage(ctx context.Context, templateID string) error
}

// RelanceRepositoryFacade combines the reminder repository interfaces.
type RelanceRepositoryFacade interface {
	RelanceReader
	RelanceWriter
}

// TemplateRepositoryFacade combines the template repository interfaces.
type TemplateRepositoryFacade interface {
	TemplateReader
	TemplateWriter
}
