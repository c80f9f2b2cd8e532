package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/noonstudio/cms_api/internal/utils"
)

// SessionMiddleware guards the admin surface. It validates the signed session
// cookie on every request independently; there is no shared mutable state and
// any verification failure is treated as "unauthenticated", never as a fault.
type SessionMiddleware struct {
	secret string
}

// NewSessionMiddleware constructs a SessionMiddleware with the signing secret.
func NewSessionMiddleware(secret string) *SessionMiddleware {
	return &SessionMiddleware{secret: secret}
}

// authenticated reports whether the request carries a valid session cookie.
func (m *SessionMiddleware) authenticated(c *gin.Context) bool {
	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil || token == "" {
		return false
	}
	if _, err := utils.ValidateSessionToken(token, m.secret); err != nil {
		return false
	}
	return true
}

// APIGuard returns a middleware for admin API routes: a missing or invalid
// session yields a 401 JSON body with no side effects.
func (m *SessionMiddleware) APIGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticated(c) {
			utils.Error(c, 401, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// PageGuard returns a middleware for admin page routes: a missing or invalid
// session redirects to the login page, carrying the originally requested path
// in the redirect query parameter.
func (m *SessionMiddleware) PageGuard(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticated(c) {
			target := loginPath + "?redirect=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
