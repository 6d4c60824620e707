package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
)

// placeholderPattern matches {{variable}} tokens in template text.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// frenchDate formats a date the way it appears in customer mail.
func frenchDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// BuildTemplateVariables assembles the full substitution map for one
// reminder. This is the complete vocabulary available to template authors;
// a template referencing anything else fails to render.
func BuildTemplateVariables(company *domain.Company, invoice *domain.Invoice, relance *domain.Relance, sendDate time.Time) map[string]string {
	return map[string]string{
		"clientNom":           invoice.ClientName,
		"clientEmail":         invoice.ClientEmail,
		"factureNumero":       invoice.Number,
		"factureDate":         frenchDate(invoice.IssueDate),
		"factureDateEcheance": frenchDate(invoice.DueDate),
		"factureMontant":      invoice.TotalAmount.StringFixed(2) + " €",
		"factureResteAPayer":  invoice.RemainingDue().StringFixed(2) + " €",
		"joursRetard":         strconv.Itoa(relance.DaysOverdue),
		"entrepriseNom":       company.Name,
		"entrepriseEmail":     company.Email,
		"entrepriseTelephone": company.Phone,
		"dateRelance":         frenchDate(sendDate),
	}
}

// RenderTemplate substitutes every {{variable}} token in text. A token with
// no entry in vars aborts the render with ErrTemplate; a reminder must never
// leave with a raw placeholder in it.
func RenderTemplate(text string, vars map[string]string) (string, error) {
	var missing string
	rendered := placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		value, ok := vars[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return token
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("%w: unknown variable {{%s}}", apperrors.ErrTemplate, missing)
	}
	return rendered, nil
}
