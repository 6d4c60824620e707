package domain

// Company is a legal entity (société) within the group. Accounting data,
// invoices and dunning state are all partitioned per company.
type Company struct {
	CompanyID string `json:"companyID"` // Primary key (UUID)
	Name      string `json:"name"`
	SIRET     string `json:"siret"`
	Email     string `json:"email"` // Sender address for outbound reminders
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
