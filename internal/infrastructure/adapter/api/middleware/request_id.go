package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/database"
)

// RequestIDHeader carries the correlation id of a request
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or issues a new one, echoes it in the
// response and puts it on the request context for SQL logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), database.RequestIDKey{}, id))

		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, falling back to the raw header
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.GetHeader(RequestIDHeader)
}
