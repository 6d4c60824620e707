package domain

import "github.com/shopspring/decimal"

// BalanceRow is a computed per-account aggregation of debits and credits over
// a period. Rows are never persisted; they are produced fresh per query.
type BalanceRow struct {
	AccountNumber string          `json:"accountNumber"`
	Label         string          `json:"label"`
	Class         AccountClass    `json:"class"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	Solde         decimal.Decimal `json:"solde"` // TotalDebit - TotalCredit
}

// BalanceSide selects which rows of an aggregated balance to keep when
// post-filtering. Filtering never alters the aggregation itself.
type BalanceSide string

const (
	SideAll      BalanceSide = ""
	SideDebtor   BalanceSide = "DEBTOR"   // solde > 0
	SideCreditor BalanceSide = "CREDITOR" // solde < 0
	SideZero     BalanceSide = "ZERO"     // solde == 0
)

// BalanceFilter is a pure post-filter over an already-aggregated row set.
type BalanceFilter struct {
	Class AccountClass // Keep only rows of this class when non-empty
	Side  BalanceSide
}
