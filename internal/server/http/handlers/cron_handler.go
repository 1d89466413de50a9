package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itlabs/orderflow/internal/server/http/dto"
	"github.com/itlabs/orderflow/internal/server/http/middleware"
)

// CronHandler triggers scheduled jobs from an external scheduler.
type CronHandler struct {
	facade CronFacade
	secret string
}

// NewCronHandler constructs CronHandler.
func NewCronHandler(facade CronFacade, secret string) *CronHandler {
	return &CronHandler{facade: facade, secret: secret}
}

// CheckDeadlines handles POST /api/cron/deadlines. The endpoint refuses to
// work until a cron secret is configured.
func (h *CronHandler) CheckDeadlines(c *gin.Context) {
	if h.secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cron secret is not configured"})
		return
	}
	token := middleware.BearerToken(c)
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid cron token"})
		return
	}

	report, err := h.facade.CheckDeadlines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deadline sweep failed"})
		return
	}

	c.JSON(http.StatusOK, dto.DeadlineReportResponse{
		Milestones:           report.Milestones,
		Tasks:                report.Tasks,
		NotificationsCreated: report.NotificationsCreated,
	})
}
