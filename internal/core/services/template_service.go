package services

import (
	"context"
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

// templateService provides reminder template management.
type templateService struct {
	BaseService
	templateRepo portsrepo.TemplateRepositoryFacade
}

// NewTemplateService creates a new template service.
func NewTemplateService(templateRepo portsrepo.TemplateRepositoryFacade) portssvc.TemplateSvcFacade {
	return &templateService{templateRepo: templateRepo}
}

// Ensure templateService implements the TemplateSvcFacade interface
var _ portssvc.TemplateSvcFacade = (*templateService)(nil)

// validateBodies dry-renders template text against the known variable set so
// an unknown placeholder is rejected at save time, not at the first send.
func validateBodies(texts ...string) error {
	vars := BuildTemplateVariables(
		&domain.Company{},
		&domain.Invoice{},
		&domain.Relance{},
		time.Now(),
	)
	for _, text := range texts {
		if _, err := RenderTemplate(text, vars); err != nil {
			return err
		}
	}
	return nil
}

// CreateTemplate persists a new reminder template, active immediately.
// Creating an active template for a tier deactivates the previous active one;
// a tier has at most one active template per company.
func (s *templateService) CreateTemplate(ctx context.Context, companyID string, req dto.CreateTemplateRequest, userID string) (*domain.ReminderTemplate, error) {
	tier := domain.DunningTier(req.Tier)
	if err := validateBodies(req.Subject, req.BodyText, req.BodyHTML); err != nil {
		return nil, err
	}

	if previous, err := s.templateRepo.FindActiveTemplateByTier(ctx, companyID, tier); err == nil {
		previous.IsActive = false
		previous.LastUpdatedAt = time.Now().UTC()
		previous.LastUpdatedBy = userID
		if err := s.templateRepo.UpdateTemplate(ctx, *previous); err != nil {
			return nil, fmt.Errorf("failed to retire previous template: %w", err)
		}
		s.LogInfo(ctx, "Previous template deactivated",
			slog.String("template_id", previous.TemplateID),
			slog.Int("tier", req.Tier))
	}

	now := time.Now().UTC()
	template := domain.ReminderTemplate{
		TemplateID: uuid.NewString(),
		CompanyID:  companyID,
		Tier:       tier,
		Name:       req.Name,
		Subject:    req.Subject,
		BodyHTML:   req.BodyHTML,
		BodyText:   req.BodyText,
		AttachPDF:  req.AttachPDF,
		CCInternal: req.CCInternal,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		s.LogError(ctx, err, "Failed to save template", slog.Int("tier", req.Tier))
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	s.LogInfo(ctx, "Reminder template created",
		slog.String("template_id", template.TemplateID),
		slog.Int("tier", req.Tier))
	return &template, nil
}

// UpdateTemplate updates mutable template fields. The tier binding is
// immutable; a template never migrates between tiers.
func (s *templateService) UpdateTemplate(ctx context.Context, companyID, templateID string, req dto.UpdateTemplateRequest, userID string) (*domain.ReminderTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	if req.Subject != nil {
		if err := validateBodies(*req.Subject); err != nil {
			return nil, err
		}
		template.Subject = *req.Subject
	}
	if req.BodyText != nil {
		if err := validateBodies(*req.BodyText); err != nil {
			return nil, err
		}
		template.BodyText = *req.BodyText
	}
	if req.BodyHTML != nil {
		if err := validateBodies(*req.BodyHTML); err != nil {
			return nil, err
		}
		template.BodyHTML = *req.BodyHTML
	}
	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.AttachPDF != nil {
		template.AttachPDF = *req.AttachPDF
	}
	if req.CCInternal != nil {
		template.CCInternal = *req.CCInternal
	}
	if req.IsActive != nil {
		if *req.IsActive && !template.IsActive {
			// Activating this one retires the currently active template of the tier.
			if previous, err := s.templateRepo.FindActiveTemplateByTier(ctx, companyID, template.Tier); err == nil && previous.TemplateID != template.TemplateID {
				previous.IsActive = false
				previous.LastUpdatedAt = time.Now().UTC()
				previous.LastUpdatedBy = userID
				if err := s.templateRepo.UpdateTemplate(ctx, *previous); err != nil {
					return nil, fmt.Errorf("failed to retire previous template: %w", err)
				}
			}
		}
		template.IsActive = *req.IsActive
	}
	template.LastUpdatedAt = time.Now().UTC()
	template.LastUpdatedBy = userID

	if err := s.templateRepo.UpdateTemplate(ctx, *template); err != nil {
		s.LogError(ctx, err, "Failed to update template", slog.String("template_id", templateID))
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	s.LogInfo(ctx, "Reminder template updated", slog.String("template_id", templateID))
	return template, nil
}

// ListTemplates retrieves all templates for a company, ordered by tier.
func (s *templateService) ListTemplates(ctx context.Context, companyID string) ([]domain.ReminderTemplate, error) {
	return s.templateRepo.ListTemplates(ctx, companyID)
}
