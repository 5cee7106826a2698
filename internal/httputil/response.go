// Package httputil provides shared HTTP response helpers used by both
// the API handlers and the middleware chain.
package httputil

import "github.com/gin-gonic/gin"

// RespondError writes the biograph error envelope (machine code, human
// message, request id when present) and aborts the request. The context
// key mirrors middleware.RequestIDKey; importing it here would cycle.
func RespondError(c *gin.Context, status int, code, message string) {
	var requestID string
	if rid, exists := c.Get("request_id"); exists {
		if s, ok := rid.(string); ok {
			requestID = s
		}
	}

	resp := map[string]string{
		"code":    code,
		"message": message,
	}

	if requestID != "" {
		resp["request_id"] = requestID
	}

	c.AbortWithStatusJSON(status, resp)
}
