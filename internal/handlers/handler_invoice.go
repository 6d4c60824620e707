package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/dto"
)

// InvoiceHandler serves customer invoice operations.
type InvoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// CreateInvoice godoc
// @Summary Create a customer invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, time.Now()))
}

// ListInvoices godoc
// @Summary List invoices, newest first
// @Tags invoices
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.InvoiceResponse
// @Security BearerAuth
// @Router /companies/{company_id}/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	limit, offset := paginationParams(c)

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Param("company_id"), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices, time.Now()))
}

// GetInvoice godoc
// @Summary Get an invoice with its effective status
// @Tags invoices
// @Produce json
// @Param company_id path string true "Company ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// RecordPayment godoc
// @Summary Record a payment against an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param invoice_id path string true "Invoice ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/invoices/{invoice_id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.invoiceService.RecordPayment(c.Request.Context(),
		c.Param("company_id"), c.Param("invoice_id"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, time.Now()))
}

// MarkSent godoc
// @Summary Mark a draft invoice as sent
// @Tags invoices
// @Param company_id path string true "Company ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/invoices/{invoice_id}/send [post]
func (h *InvoiceHandler) MarkSent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.MarkSent(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"), userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CancelInvoice godoc
// @Summary Cancel an invoice
// @Tags invoices
// @Param company_id path string true "Company ID"
// @Param invoice_id path string true "Invoice ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/invoices/{invoice_id}/cancel [post]
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Cancel(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"), userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
