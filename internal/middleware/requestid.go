package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID is a Gin middleware that tags every request with a unique
// identifier for log correlation.
//
// Behavior:
//   - Reuses an incoming X-Request-ID header when present, otherwise
//     generates a new UUID (v4).
//   - Stores it in the Gin context under RequestIDKey.
//   - Echoes it to the client in the X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
