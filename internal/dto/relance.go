package dto

import (
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RelanceResponse defines the data returned for a dunning reminder.
type RelanceResponse struct {
	RelanceID   string          `json:"relanceID"`
	InvoiceID   string          `json:"factureID"`
	ClientNom   string          `json:"clientNom"`
	Niveau      int             `json:"niveau"`
	NiveauNom   string          `json:"niveauNom"`
	JoursRetard int             `json:"joursRetard"`
	Montant     decimal.Decimal `json:"montant"`
	Statut      string          `json:"statut"`
	GeneratedAt time.Time       `json:"genereeLe"`
	SentAt      *time.Time      `json:"envoyeeLe,omitempty"`
	LastError   string          `json:"derniereErreur,omitempty"`
}

// ToRelanceResponse converts a domain.Relance to its DTO.
func ToRelanceResponse(r *domain.Relance) RelanceResponse {
	return RelanceResponse{
		RelanceID:   r.RelanceID,
		InvoiceID:   r.InvoiceID,
		ClientNom:   r.ClientName,
		Niveau:      int(r.Tier),
		NiveauNom:   r.Tier.Label(),
		JoursRetard: r.DaysOverdue,
		Montant:     r.Amount,
		Statut:      string(r.Status),
		GeneratedAt: r.GeneratedAt,
		SentAt:      r.SentAt,
		LastError:   r.LastError,
	}
}

// ToListRelanceResponse converts a slice of reminders to DTOs.
func ToListRelanceResponse(relances []domain.Relance) []RelanceResponse {
	res := make([]RelanceResponse, len(relances))
	for i := range relances {
		res[i] = ToRelanceResponse(&relances[i])
	}
	return res
}

// DunningRunStats is the aggregate counter block of a batch run.
type DunningRunStats struct {
	RelancesGenerees   int `json:"relancesGenerees"`
	RelancesEnvoyees   int `json:"relancesEnvoyees"`
	Echecs             int `json:"echecs"`
	ValidationManuelle int `json:"validationManuelle"`
}

// DunningRunDetails carries the per-item outcome lists of a batch run.
type DunningRunDetails struct {
	EnvoisSucces      []string              `json:"envoisSucces"`
	EnvoisEchec       []domain.RelanceError `json:"envoisEchec"`
	ErreursGeneration []domain.RelanceError `json:"erreursGeneration,omitempty"`
}

// DunningRunResponse is the contract returned by the dunning batch trigger.
type DunningRunResponse struct {
	Stats   DunningRunStats   `json:"stats"`
	Details DunningRunDetails `json:"details"`
}

// ToDunningRunResponse converts a domain run report to the response DTO.
func ToDunningRunResponse(report *domain.DunningRunReport) DunningRunResponse {
	resp := DunningRunResponse{
		Stats: DunningRunStats{
			RelancesGenerees:   report.Generated,
			RelancesEnvoyees:   report.Sent,
			Echecs:             report.Failed,
			ValidationManuelle: report.AwaitingValidation,
		},
		Details: DunningRunDetails{
			EnvoisSucces:      report.SendSuccesses,
			EnvoisEchec:       report.SendFailures,
			ErreursGeneration: report.GenerationErrors,
		},
	}
	if resp.Details.EnvoisSucces == nil {
		resp.Details.EnvoisSucces = []string{}
	}
	if resp.Details.EnvoisEchec == nil {
		resp.Details.EnvoisEchec = []domain.RelanceError{}
	}
	return resp
}
