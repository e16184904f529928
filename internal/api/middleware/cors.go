package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS writes cross-origin headers and answers preflight requests with 200
// and no body. allowOrigins is a comma-separated list, "*" allows any.
func CORS(allowOrigins string) gin.HandlerFunc {
	allowed := strings.Split(allowOrigins, ",")
	allowAll := len(allowed) == 1 && strings.TrimSpace(allowed[0]) == "*"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (allowAll || originAllowed(origin, allowed)) {
			// Reflecting the origin works better with browsers than "*"
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func originAllowed(origin string, allow []string) bool {
	for _, a := range allow {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(origin)) {
			return true
		}
	}
	return false
}
