package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// InvoiceRepository implements customer invoice persistence on PostgreSQL.
type InvoiceRepository struct {
	BaseRepository
}

// NewInvoiceRepository creates a new invoice repository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{BaseRepository{Pool: pool}}
}

// Ensure InvoiceRepository implements the facade
var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

const invoiceColumns = `invoice_id, company_id, number, client_id, client_name,
	client_email, total_amount, amount_paid, issue_date, due_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row interface{ Scan(dest ...any) error }) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID, &inv.CompanyID, &inv.Number, &inv.ClientID, &inv.ClientName,
		&inv.ClientEmail, &inv.TotalAmount, &inv.AmountPaid, &inv.IssueDate,
		&inv.DueDate, &inv.Status,
		&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &inv, nil
}

// FindInvoiceByID retrieves an invoice by its unique identifier.
func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = $1`, invoiceID)
	return scanInvoice(row)
}

// ListInvoices retrieves invoices for a company, newest first.
func (r *InvoiceRepository) ListInvoices(ctx context.Context, companyID string, limit, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices
		WHERE company_id = $1 ORDER BY issue_date DESC, number DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// ListOverdueInvoices retrieves all invoices past due at asOf with money
// outstanding. DRAFT, PAID and CANCELLED invoices never qualify.
func (r *InvoiceRepository) ListOverdueInvoices(ctx context.Context, companyID string, asOf time.Time) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices
		WHERE company_id = $1
		  AND due_date < $2
		  AND amount_paid < total_amount
		  AND status IN ('SENT', 'PARTIALLY_PAID', 'OVERDUE')
		ORDER BY due_date`,
		companyID, asOf)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

func collectInvoices(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

// ListPaymentsByInvoice retrieves the append-only payment history.
func (r *InvoiceRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT payment_id, invoice_id, amount, paid_at,
		method, reference, created_at, created_by, last_updated_at, last_updated_by
		FROM payments WHERE invoice_id = $1 ORDER BY paid_at`, invoiceID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.PaymentID, &p.InvoiceID, &p.Amount, &p.PaidAt, &p.Method, &p.Reference,
			&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
		); err != nil {
			return nil, translateError(err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SaveInvoice persists a new invoice.
func (r *InvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO invoices
		(invoice_id, company_id, number, client_id, client_name, client_email,
		 total_amount, amount_paid, issue_date, due_date, status,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		invoice.InvoiceID, invoice.CompanyID, invoice.Number, invoice.ClientID,
		invoice.ClientName, invoice.ClientEmail, invoice.TotalAmount, invoice.AmountPaid,
		invoice.IssueDate, invoice.DueDate, invoice.Status,
		invoice.CreatedAt, invoice.CreatedBy, invoice.LastUpdatedAt, invoice.LastUpdatedBy,
	)
	return translateError(err)
}

// RecordPayment appends a payment and updates the invoice's paid amount and
// status in one transaction.
func (r *InvoiceRepository) RecordPayment(ctx context.Context, payment domain.Payment, newAmountPaid decimal.Decimal, newStatus domain.InvoiceStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `INSERT INTO payments
		(payment_id, invoice_id, amount, paid_at, method, reference,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		payment.PaymentID, payment.InvoiceID, payment.Amount, payment.PaidAt,
		payment.Method, payment.Reference,
		payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err)
	}

	tag, err := tx.Exec(ctx, `UPDATE invoices
		SET amount_paid = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1`,
		payment.InvoiceID, newAmountPaid, newStatus, payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoiceStatus transitions the status of an invoice.
func (r *InvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE invoices
		SET status = $2, last_updated_by = $3, last_updated_at = $4
		WHERE invoice_id = $1`,
		invoiceID, status, updatedBy, updatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
