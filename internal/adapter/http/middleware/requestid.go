package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

const requestIDContextKey = "request_id"

// RequestIDMiddleware tags every request with an id for log correlation,
// keeping one supplied by a proxy when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDContextKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
