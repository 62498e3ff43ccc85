package repository

import (
	"context"
	"time"

	"wellora-backend/internal/model"
)

// Repository is the activity log store. The log is append-only: entries are
// never updated or deleted, and implementations must return snapshot copies
// so callers can't observe later appends through a returned slice.
type Repository interface {
	// Append stores the entry as given. ID and Timestamp are assigned by
	// the caller before appending.
	Append(ctx context.Context, entry model.ActivityLogEntry) error

	// ListByUser returns the user's entries in append order.
	ListByUser(ctx context.Context, userID string) ([]model.ActivityLogEntry, error)

	// ListByUserSince returns the user's entries timestamped at or after
	// the given instant, in append order.
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]model.ActivityLogEntry, error)

	// CountByUser returns how many entries the user has logged.
	CountByUser(ctx context.Context, userID string) (int, error)
}
