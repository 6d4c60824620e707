package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heliowash/backoffice/internal/core/domain"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/core/services"
	"github.com/heliowash/backoffice/internal/dto"
)

// BalanceHandler serves the balance and journal views.
type BalanceHandler struct {
	balanceService portssvc.BalanceService
}

// NewBalanceHandler creates a new balance handler.
func NewBalanceHandler(balanceService portssvc.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// parsePeriod validates the from/to query parameters.
func parsePeriod(params dto.BalanceQueryParams) (from, to time.Time, err error) {
	from, err = time.Parse("2006-01-02", params.From)
	if err != nil {
		return from, to, fmt.Errorf("invalid 'from' date %q, expected YYYY-MM-DD", params.From)
	}
	to, err = time.Parse("2006-01-02", params.To)
	if err != nil {
		return from, to, fmt.Errorf("invalid 'to' date %q, expected YYYY-MM-DD", params.To)
	}
	return from, to, nil
}

// sideFromParam maps the sens query parameter onto a balance side filter.
func sideFromParam(sens string) (domain.BalanceSide, error) {
	switch sens {
	case "":
		return domain.SideAll, nil
	case "DEBTOR":
		return domain.SideDebtor, nil
	case "CREDITOR":
		return domain.SideCreditor, nil
	case "ZERO":
		return domain.SideZero, nil
	}
	return domain.SideAll, fmt.Errorf("invalid 'sens' %q, expected DEBTOR, CREDITOR or ZERO", sens)
}

// GetBalance godoc
// @Summary Aggregated account balance over a period
// @Description One row per account with total debit, total credit and solde. Optional class and side filters apply after aggregation.
// @Tags balance
// @Produce json
// @Param company_id path string true "Company ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Param classe query string false "Account class filter (1-7)"
// @Param sens query string false "Side filter: DEBTOR, CREDITOR or ZERO"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	companyID := c.Param("company_id")

	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	from, to, err := parsePeriod(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	side, err := sideFromParam(params.Sens)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if params.Classe != "" && domain.ClassOf(params.Classe) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid 'classe' %q, expected 1-7", params.Classe)})
		return
	}

	rows, err := h.balanceService.ComputeBalance(c.Request.Context(), companyID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filtered := services.FilterBalanceRows(rows, domain.BalanceFilter{
		Class: domain.AccountClass(params.Classe),
		Side:  side,
	})

	c.JSON(http.StatusOK, dto.ToBalanceResponse(rows, filtered, from, to))
}

// GetJournal godoc
// @Summary Raw journal over a period
// @Description The chronological list of écritures the balance reconciles against.
// @Tags balance
// @Produce json
// @Param company_id path string true "Company ID"
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/journal [get]
func (h *BalanceHandler) GetJournal(c *gin.Context) {
	companyID := c.Param("company_id")

	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	from, to, err := parsePeriod(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := h.balanceService.ListEntries(c.Request.Context(), companyID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(entries, from, to))
}
