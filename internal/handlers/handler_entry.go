package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/dto"
)

// EntryHandler serves journal entry operations.
type EntryHandler struct {
	entryService portssvc.EntrySvcFacade
}

// NewEntryHandler creates a new journal entry handler.
func NewEntryHandler(entryService portssvc.EntrySvcFacade) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Tags entries
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry, true))
}

// GetEntry godoc
// @Summary Get a journal entry with its lines
// @Tags entries
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id} [get]
func (h *EntryHandler) GetEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("company_id"), c.Param("entry_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry, true))
}

// ReconcileEntry godoc
// @Summary Reconcile (lettrer) a balanced journal entry
// @Tags entries
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entry_id path string true "Entry ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id}/reconcile [post]
func (h *EntryHandler) ReconcileEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.entryService.ReconcileEntry(c.Request.Context(), c.Param("company_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateCorrectiveEntry godoc
// @Summary Create a corrective entry superseding an existing one
// @Tags entries
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param entry_id path string true "Original entry ID"
// @Param entry body dto.CreateEntryRequest true "Corrective entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id}/correct [post]
func (h *EntryHandler) CreateCorrectiveEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.entryService.CreateCorrectiveEntry(c.Request.Context(),
		c.Param("company_id"), c.Param("entry_id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry, true))
}
