package model

import "time"

// DefaultUserID is the sentinel used when a request carries no user id.
const DefaultUserID = "default_user"

// ActivityType is the kind of activity a user can log.
type ActivityType string

const (
	ActivityMeal    ActivityType = "meal"
	ActivityWorkout ActivityType = "workout"
)

// Valid reports whether the activity type is one of the known kinds.
func (t ActivityType) Valid() bool {
	return t == ActivityMeal || t == ActivityWorkout
}

// Unit returns the measurement unit for the activity's value.
func (t ActivityType) Unit() string {
	if t == ActivityMeal {
		return "kcal"
	}
	return "minutes"
}

// ActivityLogEntry is a single logged meal or workout.
// Entries are immutable once appended to the store.
type ActivityLogEntry struct {
	ID           string       // Server-assigned UUID
	UserID       string       // Owner; DefaultUserID when not provided
	ActivityType ActivityType // meal or workout
	Details      string       // Free text, e.g. "Jogging" or "Chicken salad"
	Value        float64      // kcal for meals, minutes for workouts
	Timestamp    time.Time    // Server-assigned at append time
}
