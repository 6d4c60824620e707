package dto

import (
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a customer invoice.
type CreateInvoiceRequest struct {
	Number      string          `json:"numero" binding:"required"`
	ClientID    string          `json:"clientID" binding:"required"`
	ClientName  string          `json:"clientNom" binding:"required"`
	ClientEmail string          `json:"clientEmail" binding:"required,email"`
	TotalAmount decimal.Decimal `json:"montantTotal" binding:"required"`
	IssueDate   time.Time       `json:"dateEmission" binding:"required" time_format:"2006-01-02"`
	DueDate     time.Time       `json:"dateEcheance" binding:"required" time_format:"2006-01-02"`
}

// RecordPaymentRequest defines the data needed to record a payment.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"montant" binding:"required"`
	PaidAt    time.Time       `json:"datePaiement" binding:"required" time_format:"2006-01-02"`
	Method    string          `json:"moyen"`
	Reference string          `json:"reference"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID    string          `json:"invoiceID"`
	Numero       string          `json:"numero"`
	ClientID     string          `json:"clientID"`
	ClientNom    string          `json:"clientNom"`
	ClientEmail  string          `json:"clientEmail"`
	MontantTotal decimal.Decimal `json:"montantTotal"`
	MontantPaye  decimal.Decimal `json:"montantPaye"`
	ResteAPayer  decimal.Decimal `json:"resteAPayer"`
	DateEmission string          `json:"dateEmission"`
	DateEcheance string          `json:"dateEcheance"`
	Statut       string          `json:"statut"`
}

// ToInvoiceResponse converts a domain.Invoice to its DTO, using the
// effective status at the given date.
func ToInvoiceResponse(inv *domain.Invoice, today time.Time) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:    inv.InvoiceID,
		Numero:       inv.Number,
		ClientID:     inv.ClientID,
		ClientNom:    inv.ClientName,
		ClientEmail:  inv.ClientEmail,
		MontantTotal: inv.TotalAmount,
		MontantPaye:  inv.AmountPaid,
		ResteAPayer:  inv.RemainingDue(),
		DateEmission: inv.IssueDate.Format("2006-01-02"),
		DateEcheance: inv.DueDate.Format("2006-01-02"),
		Statut:       string(inv.EffectiveStatus(today)),
	}
}

// ToListInvoiceResponse converts a slice of invoices to DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice, today time.Time) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i], today)
	}
	return res
}
