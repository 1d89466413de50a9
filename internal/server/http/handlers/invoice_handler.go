package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/server/http/dto"
	"github.com/itlabs/orderflow/internal/usecase"
)

// InvoiceHandler manages billing endpoints.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Create handles POST /api/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	invoice, err := h.facade.CreateInvoice(c.Request.Context(), usecase.CreateInvoiceInput{
		ClientID: req.ClientID,
		OrderID:  req.OrderID,
		Total:    req.Total,
		DueDate:  req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toInvoiceResponse(invoice))
}

// SetStatus handles PUT /api/invoices/:id/status.
func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.SetInvoiceStatus(c.Request.Context(), id, model.InvoiceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// RecordPayment handles POST /api/invoices/:id/payments.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	invoice, payment, err := h.facade.RecordPayment(c.Request.Context(), id, repository.PaymentInput{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	var response dto.PaymentResponse
	response.Payment.ID = payment.ID
	response.Payment.Amount = payment.Amount
	response.Payment.Method = payment.Method
	response.Payment.Reference = payment.Reference
	response.Payment.PaymentDate = payment.PaymentDate
	response.Invoice = toInvoiceResponse(invoice)

	c.JSON(http.StatusCreated, response)
}

func toInvoiceResponse(invoice *model.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:         invoice.ID,
		Number:     invoice.Number,
		ClientID:   invoice.ClientID,
		OrderID:    invoice.OrderID,
		Status:     string(invoice.Status),
		Total:      invoice.Total,
		PaidAmount: invoice.PaidAmount,
		PaidAt:     invoice.PaidAt,
		DueDate:    invoice.DueDate,
		CreatedAt:  invoice.CreatedAt,
	}
}
