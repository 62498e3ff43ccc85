package assistant

import (
	"context"

	"wellora-backend/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// AnalyzeQuery classifies the query, extracts entities, and composes
	// a personalized response string.
	AnalyzeQuery(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
}
