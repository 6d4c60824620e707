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

// invoiceService provides customer invoice operations.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice persists a new invoice in DRAFT status.
func (s *invoiceService) CreateInvoice(ctx context.Context, companyID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date precedes issue date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		CompanyID:   companyID,
		Number:      req.Number,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		TotalAmount: req.TotalAmount,
		IssueDate:   req.IssueDate,
		DueDate:     req.DueDate,
		Status:      domain.InvoiceDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("number", req.Number))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("number", invoice.Number),
		slog.String("total", invoice.TotalAmount.String()))
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return invoice, nil
}

// ListInvoices retrieves invoices for a company, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, companyID string, limit, offset int) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx, companyID, limit, offset)
}

// RecordPayment appends a payment to the invoice's history and derives the
// new status from the cumulative amount paid. Payments are append-only; an
// erroneous payment is corrected by a compensating record, never by edit.
func (s *invoiceService) RecordPayment(ctx context.Context, companyID, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Invoice, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	invoice, err := s.GetInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	switch invoice.Status {
	case domain.InvoiceCancelled:
		return nil, fmt.Errorf("%w: invoice %s is cancelled", apperrors.ErrValidation, invoice.Number)
	case domain.InvoicePaid:
		return nil, fmt.Errorf("%w: invoice %s is already settled", apperrors.ErrValidation, invoice.Number)
	}

	newAmountPaid := invoice.AmountPaid.Add(req.Amount)
	newStatus := domain.InvoicePartiallyPaid
	if newAmountPaid.GreaterThanOrEqual(invoice.TotalAmount) {
		newStatus = domain.InvoicePaid
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		InvoiceID: invoice.InvoiceID,
		Amount:    req.Amount,
		PaidAt:    req.PaidAt,
		Method:    req.Method,
		Reference: req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.RecordPayment(ctx, payment, newAmountPaid, newStatus); err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	invoice.AmountPaid = newAmountPaid
	invoice.Status = newStatus
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	s.LogInfo(ctx, "Payment recorded",
		slog.String("invoice_id", invoiceID),
		slog.String("amount", req.Amount.String()),
		slog.String("new_status", string(newStatus)))
	return invoice, nil
}

// MarkSent transitions a draft invoice to SENT, the point from which the
// due date clock matters to dunning.
func (s *invoiceService) MarkSent(ctx context.Context, companyID, invoiceID string, userID string) error {
	invoice, err := s.GetInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Status != domain.InvoiceDraft {
		return fmt.Errorf("%w: only a draft invoice can be marked sent, got %s", apperrors.ErrValidation, invoice.Status)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceSent, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to mark invoice sent", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to mark invoice sent: %w", err)
	}

	s.LogInfo(ctx, "Invoice marked sent", slog.String("invoice_id", invoiceID))
	return nil
}

// Cancel transitions an invoice to CANCELLED, which removes it from dunning
// eligibility. A settled invoice cannot be cancelled.
func (s *invoiceService) Cancel(ctx context.Context, companyID, invoiceID string, userID string) error {
	invoice, err := s.GetInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoicePaid {
		return fmt.Errorf("%w: a settled invoice cannot be cancelled", apperrors.ErrValidation)
	}
	if invoice.Status == domain.InvoiceCancelled {
		return fmt.Errorf("%w: invoice %s is already cancelled", apperrors.ErrValidation, invoice.Number)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceCancelled, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to cancel invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to cancel invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice cancelled", slog.String("invoice_id", invoiceID))
	return nil
}
