package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUsername = "username"
	CtxEmail    = "email"
)

// Username returns the authenticated principal's identifier, as set by
// the auth middleware. Listings are owned by this value.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}
