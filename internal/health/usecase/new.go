package usecase

import (
	"wellora-backend/internal/activity/repository"
	pkgLog "wellora-backend/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	activityRepo  repository.Repository
	defaultUserID string
}

// New creates a new health UseCase instance. The activity repository feeds
// the engagement and consistency score components.
func New(
	l pkgLog.Logger,
	activityRepo repository.Repository,
	defaultUserID string,
) *implUseCase {
	return &implUseCase{
		l:             l,
		activityRepo:  activityRepo,
		defaultUserID: defaultUserID,
	}
}
