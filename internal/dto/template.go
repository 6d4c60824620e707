package dto

import (
	"github.com/heliowash/backoffice/internal/core/domain"
)

// CreateTemplateRequest defines the data needed to create a reminder template.
type CreateTemplateRequest struct {
	Tier       int    `json:"niveau" binding:"required,min=1,max=4"`
	Name       string `json:"nom" binding:"required"`
	Subject    string `json:"sujet" binding:"required"`
	BodyHTML   string `json:"corpsHTML"`
	BodyText   string `json:"corpsTexte" binding:"required"`
	AttachPDF  bool   `json:"joindrePDF"`
	CCInternal bool   `json:"copieInterne"`
}

// UpdateTemplateRequest defines the data allowed for updating a template.
type UpdateTemplateRequest struct {
	Name       *string `json:"nom"`
	Subject    *string `json:"sujet"`
	BodyHTML   *string `json:"corpsHTML"`
	BodyText   *string `json:"corpsTexte"`
	AttachPDF  *bool   `json:"joindrePDF"`
	CCInternal *bool   `json:"copieInterne"`
	IsActive   *bool   `json:"actif"`
}

// TemplateResponse defines the data returned for a reminder template.
type TemplateResponse struct {
	TemplateID string `json:"templateID"`
	Niveau     int    `json:"niveau"`
	NiveauNom  string `json:"niveauNom"`
	Nom        string `json:"nom"`
	Sujet      string `json:"sujet"`
	CorpsHTML  string `json:"corpsHTML"`
	CorpsTexte string `json:"corpsTexte"`
	JoindrePDF bool   `json:"joindrePDF"`
	CopieInt   bool   `json:"copieInterne"`
	Actif      bool   `json:"actif"`
	Usage      int    `json:"nbUtilisations"`
}

// ToTemplateResponse converts a domain.ReminderTemplate to its DTO.
func ToTemplateResponse(t *domain.ReminderTemplate) TemplateResponse {
	return TemplateResponse{
		TemplateID: t.TemplateID,
		Niveau:     int(t.Tier),
		NiveauNom:  t.Tier.Label(),
		Nom:        t.Name,
		Sujet:      t.Subject,
		CorpsHTML:  t.BodyHTML,
		CorpsTexte: t.BodyText,
		JoindrePDF: t.AttachPDF,
		CopieInt:   t.CCInternal,
		Actif:      t.IsActive,
		Usage:      t.UsageCount,
	}
}

// ToListTemplateResponse converts a slice of templates to DTOs.
func ToListTemplateResponse(templates []domain.ReminderTemplate) []TemplateResponse {
	res := make([]TemplateResponse, len(templates))
	for i := range templates {
		res[i] = ToTemplateResponse(&templates[i])
	}
	return res
}
