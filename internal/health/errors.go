package health

import "errors"

// Domain-specific errors for the health package.
var (
	ErrInvalidProfile = errors.New("profile has invalid measurements")
)
