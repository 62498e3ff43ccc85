package middleware

import (
	"wellora-backend/config"
	pkgLog "wellora-backend/pkg/log"
)

type Middleware struct {
	l   pkgLog.Logger
	cfg config.RateLimitConfig
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
