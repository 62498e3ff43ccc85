package http

import (
	"errors"

	"wellora-backend/internal/activity"
)

// isValidationError reports whether the domain error is a client mistake
// (400) rather than a server-side failure (500).
func isValidationError(err error) bool {
	return errors.Is(err, activity.ErrInvalidActivityType) ||
		errors.Is(err, activity.ErrNegativeValue)
}
