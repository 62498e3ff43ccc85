package recommender

import "errors"

// Validation errors for profile measurements.
var (
	ErrInvalidMeasurement = errors.New("weight and height must be positive")
	ErrInvalidAge         = errors.New("age must not be negative")
)
