package services

import (
	"context"
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/dto"
)

// DunningSvcFacade drives the relance pipeline: classification of overdue
// invoices, idempotent reminder generation, policy-gated sending and the
// daily batch composing the three.
type DunningSvcFacade interface {
	// GenerateDueReminders classifies every overdue eligible invoice of the
	// company at asOf and creates the missing (invoice, tier) reminders in
	// PENDING status. Partial-success: one invoice failing is reported in
	// the returned error list without aborting the batch.
	GenerateDueReminders(ctx context.Context, companyID string, asOf time.Time) ([]domain.Relance, []domain.RelanceError, error)

	// SendReminder renders the active template of the reminder's tier and
	// dispatches it, honouring the per-tier auto-send policy gate. force
	// bypasses the gate (operator validation path).
	SendReminder(ctx context.Context, companyID, relanceID string, force bool) (*domain.Relance, error)

	// RunDailyDunning composes generation then sending of auto-send tiers
	// and returns the aggregate report the monitoring caller depends on.
	// Safe to invoke more than once per day.
	RunDailyDunning(ctx context.Context, companyID string, asOf time.Time) (*domain.DunningRunReport, error)

	// ListRelances retrieves reminders for a company.
	ListRelances(ctx context.Context, companyID string, status domain.RelanceStatus, limit, offset int) ([]domain.Relance, error)
}

// TemplateSvcFacade defines reminder template management.
type TemplateSvcFacade interface {
	// CreateTemplate persists a new reminder template.
	CreateTemplate(ctx context.Context, companyID string, req dto.CreateTemplateRequest, userID string) (*domain.ReminderTemplate, error)

	// UpdateTemplate updates mutable template fields.
	UpdateTemplate(ctx context.Context, companyID, templateID string, req dto.UpdateTemplateRequest, userID string) (*domain.ReminderTemplate, error)

	// ListTemplates retrieves all templates for a company.
	ListTemplates(ctx context.Context, companyID string) ([]domain.ReminderTemplate, error)
}
