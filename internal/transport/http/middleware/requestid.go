package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/olzhasq/newsletter-service/internal/requestid"
)

// RequestID injects a request ID into the context and response header.
// An incoming X-Request-ID is preserved; otherwise a new UUID v4 is
// generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = requestid.New()
		}

		ctx := requestid.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
