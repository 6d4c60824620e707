package domain

// AccountClass is the leading digit of a French chart-of-accounts number,
// '1' through '7'. Classes 1-5 are balance-sheet accounts, 6 is charges,
// 7 is produits.
type AccountClass string

const (
	ClassCapitaux   AccountClass = "1"
	ClassImmobilise AccountClass = "2"
	ClassStocks     AccountClass = "3"
	ClassTiers      AccountClass = "4"
	ClassFinancier  AccountClass = "5"
	ClassCharges    AccountClass = "6"
	ClassProduits   AccountClass = "7"
)

// Account is an entry in a company's chart of accounts (plan comptable).
// The number is unique per company (e.g. "706000"). Accounts referenced by
// journal entries are never deleted, only deactivated.
type Account struct {
	AccountID     string       `json:"accountID"` // Primary key (UUID)
	CompanyID     string       `json:"companyID"`
	Number        string       `json:"number"` // e.g. "706000", unique per company
	Label         string       `json:"label"`
	Class         AccountClass `json:"class"`    // Derived from the leading digit of Number
	SubClass      string       `json:"subClass"` // Optional, e.g. "70"
	VATDeductible bool         `json:"vatDeductible"`
	VATCollected  bool         `json:"vatCollected"`
	Description   string       `json:"description"`
	IsActive      bool         `json:"isActive"`
	AuditFields
}

// ClassOf returns the account class for an account number, or "" when the
// number does not start with a digit in '1'..'7'.
func ClassOf(number string) AccountClass {
	if len(number) == 0 {
		return ""
	}
	c := number[0]
	if c < '1' || c > '7' {
		return ""
	}
	return AccountClass(number[:1])
}

// IsExpenseClass reports whether the class is a charge class (6).
func (c AccountClass) IsExpenseClass() bool { return c == ClassCharges }

// IsRevenueClass reports whether the class is a produit class (7).
func (c AccountClass) IsRevenueClass() bool { return c == ClassProduits }
