package http

import (
	"github.com/gin-gonic/gin"

	"rag-intent-chat/internal/middleware"
)

// RegisterRoutes maps the session endpoints. Every route requires the scope headers.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.Scope())
	{
		sessions.GET("", h.List)
		sessions.GET("/:id/messages", h.Messages)
		sessions.DELETE("/:id", h.Delete)
	}
}
