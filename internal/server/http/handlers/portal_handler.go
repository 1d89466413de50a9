package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/server/http/dto"
)

// PortalHandler serves the client portal endpoints.
type PortalHandler struct {
	facade PortalFacade
}

// NewPortalHandler constructs PortalHandler.
func NewPortalHandler(facade PortalFacade) *PortalHandler {
	return &PortalHandler{facade: facade}
}

// RequestAccess handles POST /api/portal/access. The response is identical for
// known and unknown emails.
func (h *PortalHandler) RequestAccess(c *gin.Context) {
	var req dto.PortalAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.RequestPortalAccess(c.Request.Context(), req.Email, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrRateLimited):
			c.Status(http.StatusTooManyRequests)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusAccepted)
}

// Orders handles GET /api/portal/orders.
func (h *PortalHandler) Orders(c *gin.Context) {
	orders, err := h.facade.PortalOrders(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Invoices handles GET /api/portal/invoices.
func (h *PortalHandler) Invoices(c *gin.Context) {
	invoices, err := h.facade.PortalInvoices(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		response = append(response, toInvoiceResponse(&invoices[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Proposals handles GET /api/portal/proposals.
func (h *PortalHandler) Proposals(c *gin.Context) {
	proposals, err := h.facade.PortalProposals(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		response = append(response, toProposalResponse(&proposals[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Tickets handles GET /api/portal/tickets.
func (h *PortalHandler) Tickets(c *gin.Context) {
	tickets, err := h.facade.PortalTickets(c.Request.Context(), CurrentClientID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		response = append(response, toTicketResponse(&tickets[i]))
	}
	c.JSON(http.StatusOK, response)
}
