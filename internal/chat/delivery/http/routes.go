package http

import (
	"github.com/gin-gonic/gin"

	"rag-intent-chat/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. It is rate limited per tenant.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
