package http

import (
	"github.com/gin-gonic/gin"

	"wellora-backend/internal/activity"
	pkgLog "wellora-backend/pkg/log"
)

// Handler is the public interface for the activity HTTP delivery layer.
type Handler interface {
	Log(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc activity.UseCase
}

// New creates a new HTTP handler for the activity domain.
func New(l pkgLog.Logger, uc activity.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
