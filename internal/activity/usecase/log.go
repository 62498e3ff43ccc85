package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"wellora-backend/internal/activity"
	"wellora-backend/internal/model"
)

// Bonus thresholds for the instant feedback clause.
const (
	heartyMealKcal    = 800
	solidWorkoutMins  = 30
	heartyMealClause  = ". That's a hearty meal!"
	solidWorkoutClause = ". Great job hitting that workout!"
)

// Log validates and appends a single activity entry with a server-assigned
// ID and timestamp, then builds the confirmation message.
func (uc *implUseCase) Log(ctx context.Context, sc model.Scope, input activity.LogInput) (activity.LogOutput, error) {
	activityType := model.ActivityType(input.ActivityType)
	if !activityType.Valid() {
		return activity.LogOutput{}, activity.ErrInvalidActivityType
	}
	if input.Value < 0 {
		return activity.LogOutput{}, activity.ErrNegativeValue
	}

	userID := sc.UserID
	if userID == "" {
		userID = uc.defaultUserID
	}

	entry := model.ActivityLogEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: activityType,
		Details:      input.Details,
		Value:        input.Value,
		Timestamp:    uc.now(),
	}

	if err := uc.repo.Append(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "activity.Log: append failed: %v", err)
		return activity.LogOutput{}, fmt.Errorf("failed to store activity: %w", err)
	}

	message := fmt.Sprintf("Successfully logged %s: %s (%s %s)",
		activityType, entry.Details,
		strconv.FormatFloat(entry.Value, 'f', -1, 64), activityType.Unit())

	if activityType == model.ActivityMeal && entry.Value > heartyMealKcal {
		message += heartyMealClause
	} else if activityType == model.ActivityWorkout && entry.Value > solidWorkoutMins {
		message += solidWorkoutClause
	}

	uc.l.Infof(ctx, "activity.Log: user=%s type=%s value=%v", userID, activityType, entry.Value)

	return activity.LogOutput{Entry: entry, Message: message}, nil
}
