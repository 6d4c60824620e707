package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
)

func TestBuildTemplateVariables(t *testing.T) {
	company := &domain.Company{
		Name:  "HelioWash Provence",
		Email: "contact@heliowash.fr",
		Phone: "04 91 00 00 00",
	}
	invoice := &domain.Invoice{
		Number:      "FAC-2024-0042",
		ClientName:  "Soleil du Sud SARL",
		ClientEmail: "compta@soleildusud.fr",
		TotalAmount: d("1440.00"),
		AmountPaid:  d("440.00"),
		IssueDate:   time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	relance := &domain.Relance{DaysOverdue: 18}
	sendDate := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	vars := BuildTemplateVariables(company, invoice, relance, sendDate)

	assert.Equal(t, "Soleil du Sud SARL", vars["clientNom"])
	assert.Equal(t, "compta@soleildusud.fr", vars["clientEmail"])
	assert.Equal(t, "FAC-2024-0042", vars["factureNumero"])
	assert.Equal(t, "02/04/2024", vars["factureDate"])
	assert.Equal(t, "02/05/2024", vars["factureDateEcheance"])
	assert.Equal(t, "1440.00 €", vars["factureMontant"])
	assert.Equal(t, "1000.00 €", vars["factureResteAPayer"])
	assert.Equal(t, "18", vars["joursRetard"])
	assert.Equal(t, "HelioWash Provence", vars["entrepriseNom"])
	assert.Equal(t, "contact@heliowash.fr", vars["entrepriseEmail"])
	assert.Equal(t, "04 91 00 00 00", vars["entrepriseTelephone"])
	assert.Equal(t, "20/05/2024", vars["dateRelance"])
	assert.Len(t, vars, 12)
}

func TestRenderTemplateSubstitutesEveryToken(t *testing.T) {
	vars := map[string]string{
		"clientNom":          "Soleil du Sud SARL",
		"factureNumero":      "FAC-2024-0042",
		"factureResteAPayer": "1000.00 €",
		"joursRetard":        "18",
	}
	text := "Bonjour {{clientNom}},\n" +
		"La facture {{factureNumero}} présente un solde de {{factureResteAPayer}} " +
		"avec {{joursRetard}} jours de retard. Facture {{factureNumero}}."

	rendered, err := RenderTemplate(text, vars)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour Soleil du Sud SARL,\n"+
		"La facture FAC-2024-0042 présente un solde de 1000.00 € "+
		"avec 18 jours de retard. Facture FAC-2024-0042.", rendered)
}

func TestRenderTemplateUnknownVariable(t *testing.T) {
	vars := map[string]string{"clientNom": "Soleil du Sud SARL"}

	rendered, err := RenderTemplate("Bonjour {{clientNom}}, ref {{clientPrenom}}", vars)
	assert.Empty(t, rendered)
	assert.ErrorIs(t, err, apperrors.ErrTemplate)
	assert.Contains(t, err.Error(), "clientPrenom")
}

func TestRenderTemplateWithoutPlaceholders(t *testing.T) {
	rendered, err := RenderTemplate("Texte sans variable.", nil)
	require.NoError(t, err)
	assert.Equal(t, "Texte sans variable.", rendered)
}
