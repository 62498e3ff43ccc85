package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wellora-backend/internal/activity"
	"wellora-backend/internal/activity/usecase"
	"wellora-backend/internal/model"
)

func TestLog(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) // Wednesday
	clock := func() time.Time { return now }

	t.Run("Invalid Activity Type", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, clock, model.DefaultUserID)
		_, err := uc.Log(ctx, model.Scope{}, activity.LogInput{ActivityType: "swim", Value: 10})
		if !errors.Is(err, activity.ErrInvalidActivityType) {
			t.Errorf("expected ErrInvalidActivityType, got %v", err)
		}
	})

	t.Run("Negative Value", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, clock, model.DefaultUserID)
		_, err := uc.Log(ctx, model.Scope{}, activity.LogInput{ActivityType: "meal", Value: -5})
		if !errors.Is(err, activity.ErrNegativeValue) {
			t.Errorf("expected ErrNegativeValue, got %v", err)
		}
	})

	t.Run("Defaults User And Assigns ID And Timestamp", func(t *testing.T) {
		var stored model.ActivityLogEntry
		repo := &mockRepo{
			appendFunc: func(entry model.ActivityLogEntry) error {
				stored = entry
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, clock, model.DefaultUserID)

		out, err := uc.Log(ctx, model.Scope{}, activity.LogInput{
			ActivityType: "workout", Details: "Jogging", Value: 25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.UserID != model.DefaultUserID {
			t.Errorf("expected default user, got %q", stored.UserID)
		}
		if stored.ID == "" {
			t.Errorf("expected server-assigned ID")
		}
		if !stored.Timestamp.Equal(now) {
			t.Errorf("expected server-assigned timestamp %v, got %v", now, stored.Timestamp)
		}
		want := "Successfully logged workout: Jogging (25 minutes)"
		if out.Message != want {
			t.Errorf("message = %q, want %q", out.Message, want)
		}
	})

	t.Run("Workout Bonus Above 30 Minutes", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, clock, model.DefaultUserID)
		out, err := uc.Log(ctx, model.Scope{UserID: "alice"}, activity.LogInput{
			ActivityType: "workout", Details: "Gym", Value: 45,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "Great job hitting that workout!") {
			t.Errorf("expected workout bonus clause, got %q", out.Message)
		}
	})

	t.Run("Meal Bonus Above 800 Kcal", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, clock, model.DefaultUserID)
		out, _ := uc.Log(ctx, model.Scope{UserID: "alice"}, activity.LogInput{
			ActivityType: "meal", Details: "Feast", Value: 900,
		})
		if !strings.Contains(out.Message, "That's a hearty meal!") {
			t.Errorf("expected meal bonus clause, got %q", out.Message)
		}
	})

	t.Run("No Bonus At Threshold", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{}, clock, model.DefaultUserID)
		out, _ := uc.Log(ctx, model.Scope{UserID: "alice"}, activity.LogInput{
			ActivityType: "workout", Details: "Walk", Value: 30,
		})
		if strings.Contains(out.Message, "Great job") {
			t.Errorf("threshold is exclusive, got %q", out.Message)
		}
	})

	t.Run("Store Failure Wrapped", func(t *testing.T) {
		repo := &mockRepo{
			appendFunc: func(entry model.ActivityLogEntry) error {
				return errors.New("store down")
			},
		}
		uc := usecase.New(&mockLogger{}, repo, clock, model.DefaultUserID)
		_, err := uc.Log(ctx, model.Scope{}, activity.LogInput{ActivityType: "meal", Value: 100})
		if err == nil {
			t.Errorf("expected wrapped store error")
		}
	})
}
