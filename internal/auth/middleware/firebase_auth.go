package middleware

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/spacia-app/property-backend/internal/auth"
)

// FirebaseAuth validates Firebase ID tokens and stores the principal's
// username (the token UID) in the request context.
func FirebaseAuth(authClient *fbauth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		decoded, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(auth.CtxUsername, decoded.UID)
		if email, ok := decoded.Claims["email"].(string); ok {
			c.Set(auth.CtxEmail, email)
		}

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
