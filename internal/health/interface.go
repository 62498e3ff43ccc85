package health

import (
	"context"

	"wellora-backend/internal/model"
)

// UseCase defines the business logic interface for the health domain.
type UseCase interface {
	// GenerateReport computes BMI, TDEE, recommendations, and chart data
	// from a complete profile.
	GenerateReport(ctx context.Context, input ReportInput) (ReportOutput, error)

	// CalculateScore computes the composite 0-100 health score from a
	// partial profile and the user's activity history.
	CalculateScore(ctx context.Context, sc model.Scope, input ScoreInput) (ScoreOutput, error)
}
