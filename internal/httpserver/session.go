package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "apotek_session"
	sessionCtxKey = "sessionID"

	// A year, in seconds. The cart should survive the shopper coming back.
	sessionMaxAge = 365 * 24 * 60 * 60
)

// sessionMiddleware reads the session cookie, issuing a fresh token when the
// shopper has none yet. The token scopes cart and checkout-history state.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
