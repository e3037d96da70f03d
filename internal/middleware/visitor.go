package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const visitorKey = "visitor_id"

// VisitorMiddleware reads the visitor cookie, issuing a fresh uuid when it
// is missing or malformed. The cookie lifetime is renewed on every request.
func VisitorMiddleware(cookieName string, ttl time.Duration, secure bool) gin.HandlerFunc {
	maxAge := int(ttl.Seconds())

	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, id, maxAge, "/", "", secure, true)
		c.Set(visitorKey, id)

		c.Next()
	}
}

// GetVisitorID returns the id set by VisitorMiddleware, or "".
func GetVisitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}
