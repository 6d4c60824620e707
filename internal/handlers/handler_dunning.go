package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heliowash/backoffice/internal/core/domain"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/dto"
)

// DunningHandler serves the relance pipeline.
type DunningHandler struct {
	dunningService portssvc.DunningSvcFacade
}

// NewDunningHandler creates a new dunning handler.
func NewDunningHandler(dunningService portssvc.DunningSvcFacade) *DunningHandler {
	return &DunningHandler{dunningService: dunningService}
}

// RunDunning godoc
// @Summary Trigger the daily dunning batch
// @Description Generates missing reminders for overdue invoices and dispatches those whose tier allows automatic sending. Idempotent within a day.
// @Tags dunning
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.DunningRunResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/dunning/run [post]
func (h *DunningHandler) RunDunning(c *gin.Context) {
	report, err := h.dunningService.RunDailyDunning(c.Request.Context(), c.Param("company_id"), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDunningRunResponse(report))
}

// ListRelances godoc
// @Summary List dunning reminders
// @Tags dunning
// @Produce json
// @Param company_id path string true "Company ID"
// @Param statut query string false "Status filter: PENDING, SENT, FAILED or AWAITING_VALIDATION"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.RelanceResponse
// @Security BearerAuth
// @Router /companies/{company_id}/relances [get]
func (h *DunningHandler) ListRelances(c *gin.Context) {
	status := domain.RelanceStatus(c.Query("statut"))
	switch status {
	case "", domain.RelancePending, domain.RelanceSent, domain.RelanceFailed, domain.RelanceAwaitingValidation:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid 'statut' filter"})
		return
	}
	limit, offset := paginationParams(c)

	relances, err := h.dunningService.ListRelances(c.Request.Context(), c.Param("company_id"), status, limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListRelanceResponse(relances))
}

// SendRelance godoc
// @Summary Send one reminder, validating it if its tier needs operator approval
// @Description The operator validation path for mise en demeure and contentieux reminders parked in AWAITING_VALIDATION.
// @Tags dunning
// @Produce json
// @Param company_id path string true "Company ID"
// @Param relance_id path string true "Reminder ID"
// @Success 200 {object} dto.RelanceResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/relances/{relance_id}/send [post]
func (h *DunningHandler) SendRelance(c *gin.Context) {
	relance, err := h.dunningService.SendReminder(c.Request.Context(),
		c.Param("company_id"), c.Param("relance_id"), true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRelanceResponse(relance))
}
