package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rag-intent-chat/pkg/log"
)

// RequestID propagates X-Request-ID, generating one when absent, into the
// request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
