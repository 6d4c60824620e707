package dto

import (
	"time"

	"github.com/heliowash/backoffice/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts entry.
type CreateAccountRequest struct {
	Number        string `json:"numero" binding:"required"`
	Label         string `json:"intitule" binding:"required"`
	VATDeductible bool   `json:"tvaDeductible"`
	VATCollected  bool   `json:"tvaCollectee"`
	Description   string `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Label         *string `json:"intitule"`
	VATDeductible *bool   `json:"tvaDeductible"`
	VATCollected  *bool   `json:"tvaCollectee"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"actif"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	Numero        string    `json:"numero"`
	Intitule      string    `json:"intitule"`
	Classe        string    `json:"classe"`
	VATDeductible bool      `json:"tvaDeductible"`
	VATCollected  bool      `json:"tvaCollectee"`
	Description   string    `json:"description"`
	Actif         bool      `json:"actif"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to its DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Numero:        acc.Number,
		Intitule:      acc.Label,
		Classe:        string(acc.Class),
		VATDeductible: acc.VATDeductible,
		VATCollected:  acc.VATCollected,
		Description:   acc.Description,
		Actif:         acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of accounts to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
