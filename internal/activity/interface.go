package activity

import (
	"context"

	"wellora-backend/internal/model"
)

// UseCase defines the business logic interface for the activity domain.
type UseCase interface {
	// Log appends a meal or workout entry to the user's activity log and
	// returns a confirmation message.
	Log(ctx context.Context, sc model.Scope, input LogInput) (LogOutput, error)

	// WeeklyHistory aggregates the user's workout minutes per weekday for
	// the current Monday-start week.
	WeeklyHistory(ctx context.Context, sc model.Scope) (WeeklyHistoryOutput, error)
}
