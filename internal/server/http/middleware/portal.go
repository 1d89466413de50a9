package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientIDContextKey is a gin context key for the authenticated portal client id.
const ClientIDContextKey = "clientID"

// PortalAuthenticator verifies portal tokens.
type PortalAuthenticator interface {
	ParsePortalToken(token string) (int64, error)
}

// PortalAuth ensures a valid portal token before accessing handler. The token
// arrives as a bearer header or, on the first visit from the emailed link, as
// a query parameter.
func PortalAuth(facade PortalAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		clientID, err := facade.ParsePortalToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ClientIDContextKey, clientID)
		c.Next()
	}
}
