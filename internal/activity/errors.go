package activity

import "errors"

// Domain-specific errors for the activity package.
var (
	ErrInvalidActivityType = errors.New("activity_type must be meal or workout")
	ErrNegativeValue       = errors.New("value must not be negative")
)
