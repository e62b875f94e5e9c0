package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"rag-intent-chat/internal/model"
	"rag-intent-chat/pkg/response"
)

// Scope requires the tenant and user headers and stores them for GetScope.
// The headers are trusted as set by the authenticating gateway in front.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			TenantID: strings.TrimSpace(c.GetHeader(HeaderTenantID)),
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
		}
		if sc.TenantID == "" || sc.UserID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope stored by Scope.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
