package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// cacheMaxAge lets clients briefly cache reads. The biographical dataset
// only changes on reload, so short caching is safe for GET responses.
const cacheMaxAge = "public, max-age=300"

// SecurityHeaders returns Gin middleware that sets security response
// headers. Reads are cacheable; everything else is marked no-store.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", cacheMaxAge)
		} else {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
