package usecase_test

import (
	"context"
	"time"

	"wellora-backend/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is a function-field fake for repository.Repository.
type mockRepo struct {
	appendFunc    func(entry model.ActivityLogEntry) error
	listFunc      func(userID string) ([]model.ActivityLogEntry, error)
	listSinceFunc func(userID string, since time.Time) ([]model.ActivityLogEntry, error)
	countFunc     func(userID string) (int, error)
}

func (m *mockRepo) Append(ctx context.Context, entry model.ActivityLogEntry) error {
	if m.appendFunc == nil {
		return nil
	}
	return m.appendFunc(entry)
}

func (m *mockRepo) ListByUser(ctx context.Context, userID string) ([]model.ActivityLogEntry, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(userID)
}

func (m *mockRepo) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]model.ActivityLogEntry, error) {
	if m.listSinceFunc == nil {
		return nil, nil
	}
	return m.listSinceFunc(userID, since)
}

func (m *mockRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if m.countFunc == nil {
		return 0, nil
	}
	return m.countFunc(userID)
}
