package usecase

import (
	"time"

	"wellora-backend/internal/activity/repository"
	pkgLog "wellora-backend/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	now           func() time.Time
	defaultUserID string
}

// New creates a new activity UseCase instance. The clock is injected so
// history aggregation is testable; nil means time.Now.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	now func() time.Time,
	defaultUserID string,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		now:           now,
		defaultUserID: defaultUserID,
	}
}
