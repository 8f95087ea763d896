package middleware

import (
	"net/http"

	"loan-portal-api/models"

	"github.com/gin-gonic/gin"
)

// Cookie names issued by the loan service. This API never mints sessions; it
// only forwards both cookies upstream.
const (
	SessionIDCookie  = "session_id"
	APISessionCookie = "api_session"
)

// SessionMiddleware requires both loan-service session cookies and stashes
// them in the request context for the gateway to forward.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionIDCookie)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session cookie is required"})
			c.Abort()
			return
		}

		apiSession, err := c.Cookie(APISessionCookie)
		if err != nil || apiSession == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session cookie is required"})
			c.Abort()
			return
		}

		c.Set("credentials", models.Credentials{
			SessionID:  sessionID,
			APISession: apiSession,
		})

		c.Next()
	}
}

// Credentials returns the session cookies stashed by SessionMiddleware.
func Credentials(c *gin.Context) models.Credentials {
	if v, ok := c.Get("credentials"); ok {
		if creds, ok := v.(models.Credentials); ok {
			return creds
		}
	}
	return models.Credentials{}
}
