package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie is the cart session cookie name.
	SessionCookie = "cart_session"

	// SessionIDKey is the context key for the session ID.
	SessionIDKey ContextKey = "cart_session_id"
)

// CartSession issues and renews the cart session cookie. Each browsing
// session gets a UUID that keys its server-side cart; values that do
// not parse as UUIDs are replaced rather than trusted.
func CartSession(maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || !validSessionID(sessionID) {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, int(maxAge.Seconds()), "/", "", false, true)
		c.Set(string(SessionIDKey), sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the cart session ID from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(SessionIDKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}

func validSessionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
