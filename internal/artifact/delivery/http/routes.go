package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps GET /artifacts/:name. The signed token is the only credential.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/artifacts/:name", h.Download)
}
