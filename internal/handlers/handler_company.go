package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
)

// CompanyHandler serves legal entity lookups.
type CompanyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService portssvc.CompanySvcFacade) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// ListCompanies godoc
// @Summary List the active companies of the group
// @Tags companies
// @Produce json
// @Success 200 {array} domain.Company
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} domain.Company
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
