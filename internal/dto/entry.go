package dto

import (
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one debit or credit line of a new journal entry.
// At most one of debit/credit may be non-zero; both must be >= 0.
type CreateEntryLineRequest struct {
	AccountNumber string          `json:"compte" binding:"required"`
	Label         string          `json:"libelle"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// CreateEntryRequest defines the data needed to create a journal entry.
type CreateEntryRequest struct {
	EntryDate      time.Time                `json:"dateEcriture" binding:"required" time_format:"2006-01-02"`
	DocumentNumber string                   `json:"numeroPiece" binding:"required"`
	Label          string                   `json:"libelle" binding:"required"`
	SourceType     domain.EntrySourceType   `json:"sourceType" binding:"required,oneof=SUPPLIER_INVOICE CUSTOMER_INVOICE EXPENSE_NOTE MANUAL"`
	Lines          []CreateEntryLineRequest `json:"lignes" binding:"required,min=1,dive"`
}

// EntryLineResponse is one line of a journal entry response.
type EntryLineResponse struct {
	Compte  string          `json:"compte"`
	Libelle string          `json:"libelle"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// EntryResponse is the journal view of one écriture comptable.
type EntryResponse struct {
	ID           string              `json:"id"`
	DateEcriture string              `json:"dateEcriture"`
	NumeroPiece  string              `json:"numeroPiece"`
	Libelle      string              `json:"libelle"`
	SourceType   string              `json:"sourceType"`
	TotalDebit   decimal.Decimal     `json:"totalDebit"`
	TotalCredit  decimal.Decimal     `json:"totalCredit"`
	Equilibre    bool                `json:"equilibre"`
	Statut       string              `json:"statut"`
	Lignes       []EntryLineResponse `json:"lignes,omitempty"`
}

// JournalResponse is the raw journal view over a period.
type JournalResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Entries []EntryResponse `json:"ecritures"`
}

// ToEntryResponse converts a domain.JournalEntry to its DTO.
func ToEntryResponse(e *domain.JournalEntry, withLines bool) EntryResponse {
	resp := EntryResponse{
		ID:           e.EntryID,
		DateEcriture: e.EntryDate.Format("2006-01-02"),
		NumeroPiece:  e.DocumentNumber,
		Libelle:      e.Label,
		SourceType:   string(e.SourceType),
		TotalDebit:   e.TotalDebit(),
		TotalCredit:  e.TotalCredit(),
		Equilibre:    e.IsBalanced(),
		Statut:       string(e.Status),
	}
	if withLines {
		resp.Lignes = make([]EntryLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lignes[i] = EntryLineResponse{
				Compte:  l.AccountNumber,
				Libelle: l.Label,
				Debit:   l.Debit,
				Credit:  l.Credit,
			}
		}
	}
	return resp
}

// ToJournalResponse converts a period of entries to the journal view DTO.
func ToJournalResponse(entries []domain.JournalEntry, from, to time.Time) JournalResponse {
	resp := JournalResponse{
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		Entries: make([]EntryResponse, len(entries)),
	}
	for i := range entries {
		resp.Entries[i] = ToEntryResponse(&entries[i], false)
	}
	return resp
}
