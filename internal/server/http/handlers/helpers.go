package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itlabs/orderflow/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated staff user id from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentClientID extracts the authenticated portal client id from context.
func CurrentClientID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.ClientIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
