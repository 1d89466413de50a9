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

// MilestoneHandler manages milestone and task endpoints.
type MilestoneHandler struct {
	facade MilestoneFacade
}

// NewMilestoneHandler constructs MilestoneHandler.
func NewMilestoneHandler(facade MilestoneFacade) *MilestoneHandler {
	return &MilestoneHandler{facade: facade}
}

// Create handles POST /api/orders/:id/milestones.
func (h *MilestoneHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	milestone, err := h.facade.CreateMilestone(c.Request.Context(), orderID, usecase.CreateMilestoneInput{
		Title:            req.Title,
		RequiresApproval: req.RequiresApproval,
		DueDate:          req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toMilestoneResponse(milestone))
}

// List handles GET /api/orders/:id/milestones.
func (h *MilestoneHandler) List(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	milestones, err := h.facade.Milestones(c.Request.Context(), orderID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.MilestoneResponse, 0, len(milestones))
	for i := range milestones {
		response = append(response, toMilestoneResponse(&milestones[i]))
	}
	c.JSON(http.StatusOK, response)
}

// SetStatus handles PUT /api/milestones/:id/status.
func (h *MilestoneHandler) SetStatus(c *gin.Context) {
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

	err := h.facade.SetMilestoneStatus(c.Request.Context(), id, model.MilestoneStatus(req.Status))
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

// CreateTask handles POST /api/orders/:id/tasks.
func (h *MilestoneHandler) CreateTask(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	task, err := h.facade.CreateTask(c.Request.Context(), orderID, usecase.CreateTaskInput{
		Title:      req.Title,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// ListTasks handles GET /api/orders/:id/tasks.
func (h *MilestoneHandler) ListTasks(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	tasks, err := h.facade.Tasks(c.Request.Context(), orderID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		response = append(response, toTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, response)
}

func toMilestoneResponse(m *model.Milestone) dto.MilestoneResponse {
	return dto.MilestoneResponse{
		ID:               m.ID,
		OrderID:          m.OrderID,
		Title:            m.Title,
		Status:           string(m.Status),
		RequiresApproval: m.RequiresApproval,
		CompletedAt:      m.CompletedAt,
		ClientApprovedAt: m.ClientApprovedAt,
		DueDate:          m.DueDate,
		CreatedAt:        m.CreatedAt,
	}
}

func toTaskResponse(t *model.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:         t.ID,
		OrderID:    t.OrderID,
		Title:      t.Title,
		Status:     string(t.Status),
		AssigneeID: t.AssigneeID,
		DueDate:    t.DueDate,
		CreatedAt:  t.CreatedAt,
	}
}
