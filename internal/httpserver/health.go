package httpserver

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"rag-intent-chat/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "rag-intent-chat is up"
	HealthVersion = "1.0.0"
	ServiceName   = "rag-intent-chat"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings every registered dependency.
// @Summary Readiness Check
// @Description Check that the database and other dependencies are reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	names := make([]string, 0, len(srv.app.Pingers))
	for name := range srv.app.Pingers {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := gin.H{}
	ready := true
	for _, name := range names {
		if err := srv.app.Pingers[name].Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", name, err)
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	body := gin.H{
		"status":  "ready",
		"checks":  checks,
		"version": HealthVersion,
		"service": ServiceName,
	}
	if !ready {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "dependency unavailable",
			Data:      body,
		})
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
