package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/server/http/dto"
	"github.com/itlabs/orderflow/internal/usecase"
)

// ProposalHandler manages proposal endpoints.
type ProposalHandler struct {
	facade ProposalFacade
}

// NewProposalHandler constructs ProposalHandler.
func NewProposalHandler(facade ProposalFacade) *ProposalHandler {
	return &ProposalHandler{facade: facade}
}

// Create handles POST /api/proposals.
func (h *ProposalHandler) Create(c *gin.Context) {
	var req dto.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	proposal, err := h.facade.CreateProposal(c.Request.Context(), usecase.CreateProposalInput{
		ClientID: req.ClientID,
		Title:    req.Title,
		Amount:   req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toProposalResponse(proposal))
}

// SetStatus handles PUT /api/proposals/:id/status.
func (h *ProposalHandler) SetStatus(c *gin.Context) {
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

	err := h.facade.SetProposalStatus(c.Request.Context(), id, model.ProposalStatus(req.Status))
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

func toProposalResponse(p *model.Proposal) dto.ProposalResponse {
	return dto.ProposalResponse{
		ID:          p.ID,
		Number:      p.Number,
		ClientID:    p.ClientID,
		Title:       p.Title,
		Amount:      p.Amount,
		Status:      string(p.Status),
		SentAt:      p.SentAt,
		ViewedAt:    p.ViewedAt,
		RespondedAt: p.RespondedAt,
		CreatedAt:   p.CreatedAt,
	}
}
