package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	artifactHTTP "rag-intent-chat/internal/artifact/delivery/http"
	chatHTTP "rag-intent-chat/internal/chat/delivery/http"
	"rag-intent-chat/internal/middleware"
	"rag-intent-chat/internal/model"
	sessionHTTP "rag-intent-chat/internal/session/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(srv.gin.Group("/api/v1"), mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "httpserver: production mode")
	} else {
		srv.l.Infof(ctx, "httpserver: %s mode", srv.environment)
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the chat routes and, when configured, the
// session and artifact routes.
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup, mw middleware.Middleware) {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.app.Chat), mw)
	srv.l.Infof(ctx, "Chat route registered at POST /api/v1/chat")

	if srv.app.Sessions != nil {
		sessionHTTP.RegisterRoutes(api, sessionHTTP.New(srv.l, srv.app.Sessions), mw)
		srv.l.Infof(ctx, "Session routes registered at /api/v1/sessions")
	} else {
		srv.l.Infof(ctx, "Session store not configured, skipping session routes")
	}

	if srv.app.Store != nil && srv.app.Signer != nil {
		artifactHTTP.RegisterRoutes(api, artifactHTTP.New(srv.l, srv.app.Store, srv.app.Signer))
		srv.l.Infof(ctx, "Artifact route registered at GET /api/v1/artifacts/:name")
	} else {
		srv.l.Infof(ctx, "Artifact store not configured, skipping download route")
	}
}
