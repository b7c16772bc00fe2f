package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spacia-app/property-backend/internal/auth"
)

// DevAuth is the local-development identity shim used when Firebase
// credentials are not configured: the caller asserts who they are via
// the X-User-Id header. Never enable in production.
func DevAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if username == "" {
			username = "demo-user"
		}

		c.Set(auth.CtxUsername, username)
		if email := strings.TrimSpace(c.GetHeader("X-User-Email")); email != "" {
			c.Set(auth.CtxEmail, email)
		}

		c.Next()
	}
}
