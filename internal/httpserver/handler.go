package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	activityHTTP "wellora-backend/internal/activity/delivery/http"
	assistantHTTP "wellora-backend/internal/assistant/delivery/http"
	healthHTTP "wellora-backend/internal/health/delivery/http"
	"wellora-backend/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RateLimit())

	if srv.environment == string(model.EnvironmentProduction) && srv.mode != gin.ReleaseMode {
		srv.l.Warnf(context.Background(), "Gin mode is %q in production", srv.mode)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	assistantHTTP.RegisterRoutes(api.Group("/assistant"), srv.assistantHandler)
	healthHTTP.RegisterRoutes(api.Group("/health"), srv.healthHandler)
	activityHTTP.RegisterRoutes(api.Group("/activity"), srv.activityHandler)

	srv.l.Infof(ctx, "Assistant, health, and activity domains registered")
	return nil
}
