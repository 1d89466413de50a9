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

// TimeEntryHandler manages time tracking endpoints.
type TimeEntryHandler struct {
	facade TimeEntryFacade
}

// NewTimeEntryHandler constructs TimeEntryHandler.
func NewTimeEntryHandler(facade TimeEntryFacade) *TimeEntryHandler {
	return &TimeEntryHandler{facade: facade}
}

// Create handles POST /api/orders/:id/time-entries.
func (h *TimeEntryHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	entry, err := h.facade.CreateTimeEntry(c.Request.Context(), orderID, CurrentUserID(c), usecase.CreateTimeEntryInput{
		Hours:       req.Hours,
		Description: req.Description,
		EntryDate:   req.EntryDate,
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

	c.JSON(http.StatusCreated, toTimeEntryResponse(entry))
}

// List handles GET /api/orders/:id/time-entries.
func (h *TimeEntryHandler) List(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	entries, err := h.facade.TimeEntries(c.Request.Context(), orderID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		response = append(response, toTimeEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, response)
}

func toTimeEntryResponse(e *model.TimeEntry) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:          e.ID,
		OrderID:     e.OrderID,
		UserID:      e.UserID,
		Hours:       e.Hours,
		Description: e.Description,
		EntryDate:   e.EntryDate,
		CreatedAt:   e.CreatedAt,
	}
}
