package services

import (
	"context"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/dto"
)

// InvoiceSvcFacade defines customer invoice operations.
type InvoiceSvcFacade interface {
	// CreateInvoice persists a new invoice.
	CreateInvoice(ctx context.Context, companyID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an invoice with its effective status.
	GetInvoiceByID(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices for a company, newest first.
	ListInvoices(ctx context.Context, companyID string, limit, offset int) ([]domain.Invoice, error)

	// RecordPayment appends a payment to an invoice and derives the new status.
	RecordPayment(ctx context.Context, companyID, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Invoice, error)

	// MarkSent transitions a draft invoice to SENT.
	MarkSent(ctx context.Context, companyID, invoiceID string, userID string) error

	// Cancel transitions an invoice to CANCELLED.
	Cancel(ctx context.Context, companyID, invoiceID string, userID string) error
}
