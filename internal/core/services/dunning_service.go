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
	"github.com/heliowash/backoffice/internal/core/ports"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
)

// dunningService drives the relance pipeline.
type dunningService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceReader
	relanceRepo  portsrepo.RelanceRepositoryFacade
	templateRepo portsrepo.TemplateRepositoryFacade
	companyRepo  portsrepo.CompanyReader
	mailer       ports.EmailSender
	pdfRenderer  ports.PDFRenderer
	config       domain.DunningConfig
}

// DunningOption defines a function signature for configuring the service.
type DunningOption func(*dunningService)

// WithDunningConfig overrides the default escalation cadence and auto-send
// policy.
func WithDunningConfig(config domain.DunningConfig) DunningOption {
	return func(s *dunningService) {
		s.config = config
	}
}

// WithPDFRenderer wires an invoice PDF renderer for templates that request
// the invoice as attachment. Without one, AttachPDF templates send without
// the attachment.
func WithPDFRenderer(renderer ports.PDFRenderer) DunningOption {
	return func(s *dunningService) {
		s.pdfRenderer = renderer
	}
}

// NewDunningService creates a new dunning service.
func NewDunningService(
	invoiceRepo portsrepo.InvoiceReader,
	relanceRepo portsrepo.RelanceRepositoryFacade,
	templateRepo portsrepo.TemplateRepositoryFacade,
	companyRepo portsrepo.CompanyReader,
	mailer ports.EmailSender,
	opts ...DunningOption,
) portssvc.DunningSvcFacade {
	svc := &dunningService{
		invoiceRepo:  invoiceRepo,
		relanceRepo:  relanceRepo,
		templateRepo: templateRepo,
		companyRepo:  companyRepo,
		mailer:       mailer,
		config:       domain.DefaultDunningConfig(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Ensure dunningService implements the DunningSvcFacade interface
var _ portssvc.DunningSvcFacade = (*dunningService)(nil)

// Classify maps an invoice to its dunning tier at the given date, or nil when
// no reminder is due. An invoice qualifies for the highest tier whose
// threshold its days overdue meets; DRAFT, PAID and CANCELLED invoices and
// invoices without outstanding balance never qualify. Pure function of its
// inputs, exported for direct testing.
func Classify(invoice *domain.Invoice, today time.Time, config domain.DunningConfig) *domain.TierDecision {
	if !invoice.IsOverdue(today) {
		return nil
	}

	days := invoice.DaysOverdue(today)
	var decision *domain.TierDecision
	for _, tier := range domain.AllTiers {
		threshold, ok := config.MinDaysOverdue[tier]
		if !ok {
			continue
		}
		if days >= threshold {
			decision = &domain.TierDecision{Tier: tier, DaysOverdue: days}
		}
	}
	return decision
}

// GenerateDueReminders classifies every overdue invoice of the company at
// asOf and creates the missing (invoice, tier) reminders in PENDING status.
// Idempotent: a pair that already has a reminder is skipped, whatever its
// status. One invoice failing is reported without aborting the rest.
func (s *dunningService) GenerateDueReminders(ctx context.Context, companyID string, asOf time.Time) ([]domain.Relance, []domain.RelanceError, error) {
	invoices, err := s.invoiceRepo.ListOverdueInvoices(ctx, companyID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue invoices", slog.String("company_id", companyID))
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	var created []domain.Relance
	var failures []domain.RelanceError

	for i := range invoices {
		invoice := &invoices[i]

		decision := Classify(invoice, asOf, s.config)
		if decision == nil {
			continue
		}

		_, err := s.relanceRepo.FindRelanceByInvoiceAndTier(ctx, invoice.InvoiceID, decision.Tier)
		if err == nil {
			// Already generated for this pair, nothing to do.
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			failures = append(failures, domain.RelanceError{ID: invoice.InvoiceID, Error: err.Error()})
			continue
		}

		now := time.Now().UTC()
		relance := domain.Relance{
			RelanceID:   uuid.NewString(),
			CompanyID:   companyID,
			InvoiceID:   invoice.InvoiceID,
			ClientID:    invoice.ClientID,
			ClientName:  invoice.ClientName,
			Tier:        decision.Tier,
			DaysOverdue: decision.DaysOverdue,
			Amount:      invoice.RemainingDue(),
			GeneratedAt: now,
			Status:      domain.RelancePending,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "system",
				LastUpdatedAt: now,
				LastUpdatedBy: "system",
			},
		}

		if err := s.relanceRepo.SaveRelance(ctx, relance); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Lost a race with a concurrent run; the pair is covered.
				continue
			}
			s.LogError(ctx, err, "Failed to save reminder",
				slog.String("invoice_id", invoice.InvoiceID),
				slog.Int("tier", int(decision.Tier)))
			failures = append(failures, domain.RelanceError{ID: invoice.InvoiceID, Error: err.Error()})
			continue
		}

		created = append(created, relance)
	}

	s.LogInfo(ctx, "Reminder generation finished",
		slog.String("company_id", companyID),
		slog.Int("overdue_invoices", len(invoices)),
		slog.Int("generated", len(created)),
		slog.Int("failures", len(failures)))
	return created, failures, nil
}

// SendReminder renders the active template of the reminder's tier and
// dispatches it. Tiers outside the auto-send policy are parked in
// AWAITING_VALIDATION unless force is set (the operator validation path).
// A transport failure is recorded as FAILED on the reminder and returned;
// it is never retried here.
func (s *dunningService) SendReminder(ctx context.Context, companyID, relanceID string, force bool) (*domain.Relance, error) {
	relance, err := s.relanceRepo.FindRelanceByID(ctx, relanceID)
	if err != nil {
		return nil, err
	}
	if relance.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if relance.Status == domain.RelanceSent {
		return nil, fmt.Errorf("%w: reminder %s already sent", apperrors.ErrValidation, relanceID)
	}

	if !force && !s.config.AutoSend[relance.Tier] {
		if err := s.relanceRepo.UpdateRelanceOutcome(ctx, relance.RelanceID, domain.RelanceAwaitingValidation, "", nil, ""); err != nil {
			return nil, fmt.Errorf("failed to park reminder for validation: %w", err)
		}
		relance.Status = domain.RelanceAwaitingValidation
		s.LogInfo(ctx, "Reminder awaiting operator validation",
			slog.String("relance_id", relance.RelanceID),
			slog.Int("tier", int(relance.Tier)))
		return relance, nil
	}

	template, err := s.templateRepo.FindActiveTemplateByTier(ctx, companyID, relance.Tier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: tier %d (%s)", apperrors.ErrNoActiveTemplate, relance.Tier, relance.Tier.Label())
		}
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, relance.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice lookup failed: %w", err)
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("company lookup failed: %w", err)
	}

	sendTime := time.Now().UTC()
	vars := BuildTemplateVariables(company, invoice, relance, sendTime)

	subject, err := RenderTemplate(template.Subject, vars)
	if err != nil {
		return nil, fmt.Errorf("subject of template %s: %w", template.TemplateID, err)
	}
	bodyText, err := RenderTemplate(template.BodyText, vars)
	if err != nil {
		return nil, fmt.Errorf("text body of template %s: %w", template.TemplateID, err)
	}
	bodyHTML := ""
	if template.BodyHTML != "" {
		bodyHTML, err = RenderTemplate(template.BodyHTML, vars)
		if err != nil {
			return nil, fmt.Errorf("html body of template %s: %w", template.TemplateID, err)
		}
	}

	msg := ports.EmailMessage{
		From:     company.Email,
		To:       []string{invoice.ClientEmail},
		Subject:  subject,
		BodyHTML: bodyHTML,
		BodyText: bodyText,
	}
	if template.CCInternal && company.Email != "" {
		msg.CC = []string{company.Email}
	}
	if template.AttachPDF && s.pdfRenderer != nil {
		pdf, err := s.pdfRenderer.RenderInvoice(ctx, invoice.InvoiceID)
		if err != nil {
			s.LogWarn(ctx, "Invoice PDF rendering failed, sending without attachment",
				slog.String("invoice_id", invoice.InvoiceID),
				slog.String("error", err.Error()))
		} else {
			msg.Attachment = pdf
			msg.AttachName = fmt.Sprintf("facture-%s.pdf", invoice.Number)
		}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		if updErr := s.relanceRepo.UpdateRelanceOutcome(ctx, relance.RelanceID, domain.RelanceFailed, template.TemplateID, nil, err.Error()); updErr != nil {
			s.LogError(ctx, updErr, "Failed to record send failure", slog.String("relance_id", relance.RelanceID))
		}
		relance.Status = domain.RelanceFailed
		relance.TemplateID = template.TemplateID
		relance.LastError = err.Error()
		s.LogError(ctx, err, "Reminder dispatch failed",
			slog.String("relance_id", relance.RelanceID),
			slog.String("invoice_id", invoice.InvoiceID))
		return relance, fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}

	if err := s.relanceRepo.UpdateRelanceOutcome(ctx, relance.RelanceID, domain.RelanceSent, template.TemplateID, &sendTime, ""); err != nil {
		// The mail left; surface the bookkeeping failure without undoing it.
		s.LogError(ctx, err, "Failed to record sent reminder", slog.String("relance_id", relance.RelanceID))
		return nil, fmt.Errorf("failed to record sent reminder: %w", err)
	}
	if err := s.templateRepo.IncrementTemplateUsage(ctx, template.TemplateID); err != nil {
		s.LogWarn(ctx, "Failed to bump template usage counter",
			slog.String("template_id", template.TemplateID),
			slog.String("error", err.Error()))
	}

	relance.Status = domain.RelanceSent
	relance.TemplateID = template.TemplateID
	relance.SentAt = &sendTime
	relance.LastError = ""

	s.LogInfo(ctx, "Reminder sent",
		slog.String("relance_id", relance.RelanceID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.Int("tier", int(relance.Tier)),
		slog.String("to", invoice.ClientEmail))
	return relance, nil
}

// RunDailyDunning runs one dunning batch: generation over every overdue
// invoice, then a send attempt for each reminder still PENDING. Safe to
// invoke more than once per day; already covered pairs and already sent
// reminders are skipped, only genuinely new work happens.
func (s *dunningService) RunDailyDunning(ctx context.Context, companyID string, asOf time.Time) (*domain.DunningRunReport, error) {
	created, generationErrors, err := s.GenerateDueReminders(ctx, companyID, asOf)
	if err != nil {
		return nil, err
	}

	pending, err := s.relanceRepo.ListRelancesByCompany(ctx, companyID, domain.RelancePending, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending reminders", slog.String("company_id", companyID))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	// Created reminders are a subset of PENDING, dedupe on id.
	seen := make(map[string]bool, len(pending))
	candidates := make([]domain.Relance, 0, len(pending)+len(created))
	for _, r := range pending {
		seen[r.RelanceID] = true
		candidates = append(candidates, r)
	}
	for _, r := range created {
		if !seen[r.RelanceID] {
			candidates = append(candidates, r)
		}
	}

	report := &domain.DunningRunReport{
		Generated:        len(created),
		GenerationErrors: generationErrors,
		Failed:           len(generationErrors),
	}

	for _, candidate := range candidates {
		sent, err := s.SendReminder(ctx, companyID, candidate.RelanceID, false)
		if err != nil {
			report.Failed++
			report.SendFailures = append(report.SendFailures, domain.RelanceError{
				ID:    candidate.RelanceID,
				Error: err.Error(),
			})
			continue
		}
		switch sent.Status {
		case domain.RelanceSent:
			report.Sent++
			report.SendSuccesses = append(report.SendSuccesses, sent.RelanceID)
		case domain.RelanceAwaitingValidation:
			report.AwaitingValidation++
		}
	}

	s.LogInfo(ctx, "Dunning batch finished",
		slog.String("company_id", companyID),
		slog.Int("generated", report.Generated),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("awaiting_validation", report.AwaitingValidation))
	return report, nil
}

// ListRelances retrieves reminders for a company, optionally restricted to
// one status.
func (s *dunningService) ListRelances(ctx context.Context, companyID string, status domain.RelanceStatus, limit, offset int) ([]domain.Relance, error) {
	return s.relanceRepo.ListRelancesByCompany(ctx, companyID, status, limit, offset)
}
