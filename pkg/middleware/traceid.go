package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceID tags every request with a fresh id, echoed in the response
// header and in envelope payloads.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("trace_id", id)
		c.Header("X-Trace-Id", id)
		c.Next()
	}
}
