package dto

import (
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceQueryParams defines query parameters for the balance and journal views.
type BalanceQueryParams struct {
	From   string `form:"from" binding:"required"` // YYYY-MM-DD
	To     string `form:"to" binding:"required"`   // YYYY-MM-DD
	Classe string `form:"classe"`                  // Optional account class filter '1'..'7'
	Sens   string `form:"sens"`                    // Optional: DEBTOR | CREDITOR | ZERO
}

// BalanceRowResponse is one row of the balance view. Field names are the
// contract the front-office tables rely on.
type BalanceRowResponse struct {
	Compte      string          `json:"compte"`
	Intitule    string          `json:"intitule"`
	Classe      string          `json:"classe"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Solde       decimal.Decimal `json:"solde"`
}

// BalanceResponse is the aggregated balance over a period. Totals always
// cover the unfiltered aggregation so they reconcile against the journal
// even when rows are filtered.
type BalanceResponse struct {
	From   string               `json:"from"`
	To     string               `json:"to"`
	Rows   []BalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"totalDebit"`
		Credit decimal.Decimal `json:"totalCredit"`
	} `json:"totals"`
}

// ToBalanceResponse converts aggregated domain rows to the response DTO.
// filtered is the post-filtered row set shown in the table; totals are
// computed over the full, unfiltered aggregation.
func ToBalanceResponse(all, filtered []domain.BalanceRow, from, to time.Time) BalanceResponse {
	resp := BalanceResponse{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
		Rows: make([]BalanceRowResponse, len(filtered)),
	}

	for i, row := range filtered {
		resp.Rows[i] = BalanceRowResponse{
			Compte:      row.AccountNumber,
			Intitule:    row.Label,
			Classe:      string(row.Class),
			TotalDebit:  row.TotalDebit,
			TotalCredit: row.TotalCredit,
			Solde:       row.Solde,
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range all {
		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
	}
	resp.Totals.Debit = totalDebit
	resp.Totals.Credit = totalCredit

	return resp
}
