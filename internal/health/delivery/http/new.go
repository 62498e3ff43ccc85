package http

import (
	"github.com/gin-gonic/gin"

	"wellora-backend/internal/health"
	pkgLog "wellora-backend/pkg/log"
)

// Handler is the public interface for the health HTTP delivery layer.
type Handler interface {
	Report(c *gin.Context)
	Score(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc health.UseCase
}

// New creates a new HTTP handler for the health domain.
func New(l pkgLog.Logger, uc health.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
