package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of a customer invoice.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "DRAFT"
	InvoiceSent          InvoiceStatus = "SENT"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoicePaid          InvoiceStatus = "PAID"
	InvoiceOverdue       InvoiceStatus = "OVERDUE" // en retard
	InvoiceCancelled     InvoiceStatus = "CANCELLED"
)

// Payment is an append-only record of money received against an invoice.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary key (UUID)
	InvoiceID string          `json:"invoiceID"`
	Amount    decimal.Decimal `json:"amount"` // > 0
	PaidAt    time.Time       `json:"paidAt"`
	Method    string          `json:"method"` // virement, chèque, CB...
	Reference string          `json:"reference"`
	AuditFields
}

// Invoice is a customer invoice (facture). AmountPaid is maintained from the
// append-only payment list; RemainingDue is the derived reste à payer.
type Invoice struct {
	InvoiceID   string          `json:"invoiceID"` // Primary key (UUID)
	CompanyID   string          `json:"companyID"`
	Number      string          `json:"number"` // e.g. "FAC-2024-0042"
	ClientID    string          `json:"clientID"`
	ClientName  string          `json:"clientName"`
	ClientEmail string          `json:"clientEmail"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	IssueDate   time.Time       `json:"issueDate"`
	DueDate     time.Time       `json:"dueDate"`
	Status      InvoiceStatus   `json:"status"`
	AuditFields
}

// RemainingDue returns the reste à payer.
func (i *Invoice) RemainingDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.AmountPaid)
}

// DaysOverdue returns the number of whole days the invoice is past its due
// date at the given date, or 0 when not yet due.
func (i *Invoice) DaysOverdue(today time.Time) int {
	days := int(today.Sub(i.DueDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsOverdue reports whether the invoice is past due with money outstanding.
func (i *Invoice) IsOverdue(today time.Time) bool {
	switch i.Status {
	case InvoiceDraft, InvoicePaid, InvoiceCancelled:
		return false
	}
	return today.After(i.DueDate) && i.RemainingDue().IsPositive()
}

// EffectiveStatus returns the status the invoice should carry at the given
// date: SENT and PARTIALLY_PAID invoices become OVERDUE once the due date has
// passed with a positive remaining balance.
func (i *Invoice) EffectiveStatus(today time.Time) InvoiceStatus {
	if i.IsOverdue(today) {
		return InvoiceOverdue
	}
	return i.Status
}
