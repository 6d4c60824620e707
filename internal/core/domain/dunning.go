package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DunningTier is one of the four escalating reminder stages.
type DunningTier int

const (
	TierAmicalReminder DunningTier = 1 // rappel amiable
	TierFirmReminder   DunningTier = 2 // relance ferme
	TierFormalNotice   DunningTier = 3 // mise en demeure
	TierLitigation     DunningTier = 4 // contentieux
)

// Label returns the French business name of the tier.
func (t DunningTier) Label() string {
	switch t {
	case TierAmicalReminder:
		return "Rappel amiable"
	case TierFirmReminder:
		return "Relance ferme"
	case TierFormalNotice:
		return "Mise en demeure"
	case TierLitigation:
		return "Contentieux"
	}
	return "Inconnu"
}

// AllTiers lists the tiers in escalation order.
var AllTiers = []DunningTier{TierAmicalReminder, TierFirmReminder, TierFormalNotice, TierLitigation}

// DunningConfig holds the per-tier escalation thresholds and auto-send
// policy. Thresholds are configuration, not constants, so operators can tune
// the cadence without a redeploy.
type DunningConfig struct {
	// MinDaysOverdue maps each tier to the minimum days-past-due at which the
	// tier applies. An invoice classifies to the highest tier whose threshold
	// is met.
	MinDaysOverdue map[DunningTier]int
	// AutoSend maps each tier to whether reminders may be dispatched without
	// operator validation.
	AutoSend map[DunningTier]bool
}

// DefaultDunningConfig returns the default cadence: 15/30/45/60 days, with
// automatic dispatch for the two amicable tiers and manual validation for
// mise en demeure and contentieux.
func DefaultDunningConfig() DunningConfig {
	return DunningConfig{
		MinDaysOverdue: map[DunningTier]int{
			TierAmicalReminder: 15,
			TierFirmReminder:   30,
			TierFormalNotice:   45,
			TierLitigation:     60,
		},
		AutoSend: map[DunningTier]bool{
			TierAmicalReminder: true,
			TierFirmReminder:   true,
			TierFormalNotice:   false,
			TierLitigation:     false,
		},
	}
}

// TierDecision is the outcome of classifying an overdue invoice.
type TierDecision struct {
	Tier        DunningTier
	DaysOverdue int
}

// RelanceStatus indicates the send state of a dunning reminder.
type RelanceStatus string

const (
	RelancePending            RelanceStatus = "PENDING"
	RelanceSent               RelanceStatus = "SENT"
	RelanceFailed             RelanceStatus = "FAILED"
	RelanceAwaitingValidation RelanceStatus = "AWAITING_VALIDATION"
)

// Relance is a dunning reminder generated for an overdue invoice. Exactly one
// Relance may exist per (invoice, tier) pair; regeneration is idempotent on
// that key. DaysOverdue and Amount are snapshots taken at generation time.
type Relance struct {
	RelanceID   string          `json:"relanceID"` // Primary key (UUID)
	CompanyID   string          `json:"companyID"`
	InvoiceID   string          `json:"invoiceID"`
	ClientID    string          `json:"clientID"`
	ClientName  string          `json:"clientName"`
	Tier        DunningTier     `json:"tier"`
	DaysOverdue int             `json:"daysOverdue"`
	Amount      decimal.Decimal `json:"amount"` // reste à payer at generation time
	GeneratedAt time.Time       `json:"generatedAt"`
	Status      RelanceStatus   `json:"status"`
	TemplateID  string          `json:"templateID"` // Resolved at send time
	SentAt      *time.Time      `json:"sentAt"`
	LastError   string          `json:"lastError"` // Transport error message on FAILED
	AuditFields
}

// ReminderTemplate is a user-editable email template bound to one dunning
// tier. Placeholders ({{clientNom}}, {{factureNumero}}, ...) are substituted
// at send time only; resolved values are never persisted back, so template
// edits do not retroactively alter sent history.
type ReminderTemplate struct {
	TemplateID string      `json:"templateID"` // Primary key (UUID)
	CompanyID  string      `json:"companyID"`
	Tier       DunningTier `json:"tier"`
	Name       string      `json:"name"`
	Subject    string      `json:"subject"`
	BodyHTML   string      `json:"bodyHTML"`
	BodyText   string      `json:"bodyText"`
	AttachPDF  bool        `json:"attachPDF"`
	CCInternal bool        `json:"ccInternal"`
	IsActive   bool        `json:"isActive"`
	UsageCount int         `json:"usageCount"`
	AuditFields
}

// RelanceError reports a per-item failure inside a dunning batch.
type RelanceError struct {
	ID    string `json:"id"`
	Error string `json:"erreur"`
}

// DunningRunReport is the aggregate outcome of one dunning batch run. The
// monitoring caller depends on this exact contract.
type DunningRunReport struct {
	Generated          int            `json:"relancesGenerees"`
	Sent               int            `json:"relancesEnvoyees"`
	Failed             int            `json:"echecs"`
	AwaitingValidation int            `json:"validationManuelle"`
	SendSuccesses      []string       `json:"envoisSucces"`
	SendFailures       []RelanceError `json:"envoisEchec"`
	GenerationErrors   []RelanceError `json:"erreursGeneration"`
}
