package usecase

import (
	"context"
	"fmt"
	"time"

	"wellora-backend/internal/activity"
	"wellora-backend/internal/model"
)

// weekdayLabels are Monday-first, matching the aggregation buckets.
var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyHistory sums workout minutes per weekday since the most recent
// Monday 00:00:00. Meals, other users, and earlier weeks are excluded.
// An empty history yields seven zeros, never an error.
func (uc *implUseCase) WeeklyHistory(ctx context.Context, sc model.Scope) (activity.WeeklyHistoryOutput, error) {
	userID := sc.UserID
	if userID == "" {
		userID = uc.defaultUserID
	}

	monday := startOfWeek(uc.now())

	entries, err := uc.repo.ListByUserSince(ctx, userID, monday)
	if err != nil {
		uc.l.Errorf(ctx, "activity.WeeklyHistory: list failed: %v", err)
		return activity.WeeklyHistoryOutput{}, fmt.Errorf("failed to read activity history: %w", err)
	}

	data := make([]float64, 7)
	for _, entry := range entries {
		if entry.ActivityType != model.ActivityWorkout {
			continue
		}
		data[mondayIndex(entry.Timestamp.Weekday())] += entry.Value
	}

	labels := make([]string, len(weekdayLabels))
	copy(labels, weekdayLabels)

	return activity.WeeklyHistoryOutput{Labels: labels, Data: data}, nil
}

// startOfWeek returns Monday 00:00:00 of t's week in t's location.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -mondayIndex(t.Weekday()))
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-first index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
