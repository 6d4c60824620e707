package repositories

import (
	"context"
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices for a company, newest first.
	ListInvoices(ctx context.Context, companyID string, limit, offset int) ([]domain.Invoice, error)

	// ListOverdueInvoices retrieves all invoices past their due date at asOf
	// with a positive remaining balance, across statuses SENT,
	// PARTIALLY_PAID and OVERDUE.
	ListOverdueInvoices(ctx context.Context, companyID string, asOf time.Time) ([]domain.Invoice, error)

	// ListPaymentsByInvoice retrieves the append-only payment history.
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// RecordPayment appends a payment and updates the invoice's paid amount
	// and status in one transaction.
	RecordPayment(ctx context.Context, payment domain.Payment, newAmountPaid decimal.Decimal, newStatus domain.InvoiceStatus) error

	// UpdateInvoiceStatus transitions the status of an invoice.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
