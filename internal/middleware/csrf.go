package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	csrfFormField  = "csrf_token"
	csrfTokenLen   = 32
)

// CSRFMiddleware protects the theme switcher with a double-submit token.
// Safe methods only get the cookie; mutations must echo it back in the
// X-CSRF-Token header or the csrf_token form field.
func CSRFMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}

			c.SetSameSite(http.SameSiteStrictMode)
			c.SetCookie(
				csrfCookieName,
				token,
				3600*8, // 8 hours
				"/",
				"",
				secure,
				false, // readable so scripted callers can echo it in the header
			)
		}

		c.Set("csrf_token", token)

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			clientToken := c.GetHeader(csrfHeaderName)
			if clientToken == "" {
				clientToken = c.PostForm(csrfFormField)
			}

			if subtle.ConstantTimeCompare([]byte(clientToken), []byte(token)) != 1 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "Invalid CSRF token",
				})
				return
			}
		}

		c.Next()
	}
}

func generateCSRFToken() (string, error) {
	bytes := make([]byte, csrfTokenLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GetCSRFToken retrieves the CSRF token set for this request.
func GetCSRFToken(c *gin.Context) string {
	return c.GetString("csrf_token")
}

// GetCSRFTokenHTML returns a hidden input carrying the request's CSRF token,
// or "" when the middleware did not run. The value is escaped.
func GetCSRFTokenHTML(c *gin.Context) string {
	token := GetCSRFToken(c)
	if token == "" {
		return ""
	}
	return `<input type="hidden" name="` + csrfFormField + `" value="` + html.EscapeString(token) + `">`
}
