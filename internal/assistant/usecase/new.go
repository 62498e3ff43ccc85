package usecase

import (
	"math/rand"

	"wellora-backend/internal/activity/repository"
	"wellora-backend/internal/nlp"
	pkgLog "wellora-backend/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	extractor     nlp.Extractor
	repo          repository.Repository
	defaultUserID string

	// intn picks the template index. Injected so composition is
	// deterministic under test; nil means the shared math/rand source.
	intn func(n int) int
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	extractor nlp.Extractor,
	repo repository.Repository,
	defaultUserID string,
	intn func(n int) int,
) *implUseCase {
	if intn == nil {
		intn = rand.Intn
	}
	return &implUseCase{
		l:             l,
		extractor:     extractor,
		repo:          repo,
		defaultUserID: defaultUserID,
		intn:          intn,
	}
}
