package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/server/http/dto"
)

// NotificationHandler serves the staff notification feed.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.facade.Notifications(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		response = append(response, toNotificationResponse(&notifications[i]))
	}
	c.JSON(http.StatusOK, response)
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.MarkNotificationRead(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
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

func toNotificationResponse(n *model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Description: n.Description,
		LinkURL:     n.LinkURL,
		EntityType:  n.EntityType,
		EntityID:    n.EntityID,
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
	}
}
