package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies a per-client token bucket keyed by client IP. Used
// on the contact-owner route to keep one caller from spamming inquiry
// emails. Limiters are kept for the process lifetime; the key space is
// bounded by the set of client IPs seen.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		key := c.ClientIP()

		mu.Lock()
		lim, ok := limiters[key]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			limiters[key] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
