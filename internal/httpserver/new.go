package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	activityHTTP "wellora-backend/internal/activity/delivery/http"
	assistantHTTP "wellora-backend/internal/assistant/delivery/http"
	healthHTTP "wellora-backend/internal/health/delivery/http"
	"wellora-backend/internal/middleware"
	pkgLog "wellora-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domain handlers
	assistantHandler assistantHTTP.Handler
	healthHandler    healthHTTP.Handler
	activityHandler  activityHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	AssistantHandler assistantHTTP.Handler
	HealthHandler    healthHTTP.Handler
	ActivityHandler  activityHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		assistantHandler: cfg.AssistantHandler,
		healthHandler:    cfg.HealthHandler,
		activityHandler:  cfg.ActivityHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	if srv.healthHandler == nil {
		return errors.New("health handler is required")
	}
	if srv.activityHandler == nil {
		return errors.New("activity handler is required")
	}
	return nil
}
