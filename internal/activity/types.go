package activity

import "wellora-backend/internal/model"

// LogInput is the input for logging a single activity.
type LogInput struct {
	ActivityType string  // "meal" or "workout"
	Details      string  // Free text description
	Value        float64 // kcal for meals, minutes for workouts
}

// LogOutput is the result of logging an activity.
type LogOutput struct {
	Entry   model.ActivityLogEntry
	Message string // Confirmation message, may carry a bonus clause
}

// WeeklyHistoryOutput is the per-weekday workout aggregation for the
// current week. Labels and Data always have seven elements, Monday first.
type WeeklyHistoryOutput struct {
	Labels []string
	Data   []float64
}
