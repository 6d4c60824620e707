package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySourceType identifies the document that produced a journal entry.
type EntrySourceType string

const (
	SourceSupplierInvoice EntrySourceType = "SUPPLIER_INVOICE"
	SourceCustomerInvoice EntrySourceType = "CUSTOMER_INVOICE"
	SourceExpenseNote     EntrySourceType = "EXPENSE_NOTE"
	SourceManual          EntrySourceType = "MANUAL"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	EntryValidated  EntryStatus = "VALIDATED"
	EntryReconciled EntryStatus = "RECONCILED" // lettrée: matched against its settling payment
)

// BalanceTolerance is the maximum absolute difference between total debit and
// total credit for an entry to still count as balanced.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// EntryLine is a single debit or credit movement on one account within a
// journal entry. At most one of Debit/Credit is non-zero.
type EntryLine struct {
	LineID        string          `json:"lineID"` // Primary key (UUID)
	EntryID       string          `json:"entryID"`
	AccountNumber string          `json:"accountNumber"`
	Label         string          `json:"label"`
	Debit         decimal.Decimal `json:"debit"`  // >= 0
	Credit        decimal.Decimal `json:"credit"` // >= 0
}

// JournalEntry is a double-entry bookkeeping record (écriture comptable).
// Entries are immutable once validated except for status transitions and are
// never deleted; mistakes are superseded by corrective entries.
type JournalEntry struct {
	EntryID         string          `json:"entryID"` // Primary key (UUID)
	CompanyID       string          `json:"companyID"`
	EntryDate       time.Time       `json:"entryDate"`
	DocumentNumber  string          `json:"documentNumber"` // numéro de pièce
	Label           string          `json:"label"`          // libellé
	SourceType      EntrySourceType `json:"sourceType"`
	Lines           []EntryLine     `json:"lines"` // Ordered, non-empty
	Status          EntryStatus     `json:"status"`
	CorrectsEntryID string          `json:"correctsEntryID"` // Set on corrective entries
	AuditFields
}

// TotalDebit sums the debit side of all lines.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether |totalDebit - totalCredit| <= BalanceTolerance.
// An unbalanced entry must never transition to RECONCILED.
func (e *JournalEntry) IsBalanced() bool {
	diff := e.TotalDebit().Sub(e.TotalCredit()).Abs()
	return diff.LessThanOrEqual(BalanceTolerance)
}
