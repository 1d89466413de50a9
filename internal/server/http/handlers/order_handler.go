package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/server/http/dto"
	"github.com/itlabs/orderflow/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ClientID:  req.ClientID,
		ManagerID: req.ManagerID,
		StatusID:  req.StatusID,
		Title:     req.Title,
		Priority:  model.Priority(req.Priority),
		Deadline:  req.Deadline,
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

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := orderFilter(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
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

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// History handles GET /api/orders/:id/history.
func (h *OrderHandler) History(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	changes, err := h.facade.OrderStatusHistory(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.StatusChangeResponse, 0, len(changes))
	for _, change := range changes {
		response = append(response, dto.StatusChangeResponse{
			ID:          change.ID,
			ToStatusID:  change.ToStatusID,
			ChangedByID: change.ChangedByID,
			CreatedAt:   change.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// SetStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var actor *int64
	if userID := CurrentUserID(c); userID != 0 {
		actor = &userID
	}

	if err := h.facade.SetOrderStatus(c.Request.Context(), id, req.StatusID, actor); err != nil {
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

func orderFilter(c *gin.Context) (model.OrderFilter, bool) {
	var filter model.OrderFilter
	for query, target := range map[string]**int64{
		"client_id":  &filter.ClientID,
		"status_id":  &filter.StatusID,
		"manager_id": &filter.ManagerID,
	} {
		raw := c.Query(query)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.OrderFilter{}, false
		}
		*target = &id
	}
	return filter, true
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID,
		Number:    order.Number,
		ClientID:  order.ClientID,
		ManagerID: order.ManagerID,
		StatusID:  order.StatusID,
		Title:     order.Title,
		Priority:  string(order.Priority),
		Deadline:  order.Deadline,
		CreatedAt: order.CreatedAt,
	}
}
