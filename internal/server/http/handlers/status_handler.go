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

// StatusHandler manages the order-status reference data endpoints.
type StatusHandler struct {
	facade StatusFacade
}

// NewStatusHandler constructs StatusHandler.
func NewStatusHandler(facade StatusFacade) *StatusHandler {
	return &StatusHandler{facade: facade}
}

// Create handles POST /api/statuses.
func (h *StatusHandler) Create(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	status, err := h.facade.CreateStatus(c.Request.Context(), usecase.CreateStatusInput{
		Name:         req.Name,
		Color:        req.Color,
		Position:     req.Position,
		IsFinal:      req.IsFinal,
		NotifyClient: req.NotifyClient,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toStatusResponse(status))
}

// List handles GET /api/statuses.
func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.facade.Statuses(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.StatusResponse, 0, len(statuses))
	for i := range statuses {
		response = append(response, toStatusResponse(&statuses[i]))
	}
	c.JSON(http.StatusOK, response)
}

// SetInitial handles PUT /api/statuses/:id/initial.
func (h *StatusHandler) SetInitial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetInitialStatus(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func toStatusResponse(status *model.OrderStatus) dto.StatusResponse {
	return dto.StatusResponse{
		ID:           status.ID,
		Code:         status.Code,
		Name:         status.Name,
		Color:        status.Color,
		Position:     status.Position,
		IsInitial:    status.IsInitial,
		IsFinal:      status.IsFinal,
		NotifyClient: status.NotifyClient,
	}
}
