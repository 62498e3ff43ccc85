// Package memory is the in-process activity log store. There is no
// persistence across restarts; swapping in a real database only requires
// another implementation of repository.Repository.
package memory

import (
	"context"
	"sync"
	"time"

	"wellora-backend/internal/activity/repository"
	"wellora-backend/internal/model"
	pkgLog "wellora-backend/pkg/log"
)

type store struct {
	l pkgLog.Logger

	// mu serializes appends and snapshot reads so concurrent requests
	// never observe a torn slice.
	mu      sync.Mutex
	entries []model.ActivityLogEntry
}

// New creates an empty in-memory activity log.
func New(l pkgLog.Logger) repository.Repository {
	return &store{l: l}
}

func (s *store) Append(ctx context.Context, entry model.ActivityLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	s.l.Debugf(ctx, "activity.memory: appended %s entry for user=%s (total %d)",
		entry.ActivityType, entry.UserID, len(s.entries))
	return nil
}

func (s *store) ListByUser(ctx context.Context, userID string) ([]model.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ActivityLogEntry, 0)
	for _, entry := range s.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *store) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]model.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ActivityLogEntry, 0)
	for _, entry := range s.entries {
		if entry.UserID == userID && !entry.Timestamp.Before(since) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *store) CountByUser(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, entry := range s.entries {
		if entry.UserID == userID {
			count++
		}
	}
	return count, nil
}
