package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/dto"
)

// TemplateHandler serves reminder template management.
type TemplateHandler struct {
	templateService portssvc.TemplateSvcFacade
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(templateService portssvc.TemplateSvcFacade) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// CreateTemplate godoc
// @Summary Create a reminder template
// @Description The new template becomes the active one for its tier.
// @Tags templates
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param template body dto.CreateTemplateRequest true "Template"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTemplateResponse(template))
}

// ListTemplates godoc
// @Summary List reminder templates by tier
// @Tags templates
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {array} dto.TemplateResponse
// @Security BearerAuth
// @Router /companies/{company_id}/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTemplateResponse(templates))
}

// UpdateTemplate godoc
// @Summary Update a reminder template
// @Tags templates
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param template_id path string true "Template ID"
// @Param template body dto.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} dto.TemplateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/templates/{template_id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(),
		c.Param("company_id"), c.Param("template_id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}
