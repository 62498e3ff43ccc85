package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wellora-backend/internal/assistant"
	"wellora-backend/internal/assistant/usecase"
	"wellora-backend/internal/model"
	"wellora-backend/internal/nlp"
)

// firstTemplate always picks index 0 so composition is deterministic.
func firstTemplate(n int) int { return 0 }

func TestAnalyzeQuery(t *testing.T) {
	ctx := context.Background()
	extractor := nlp.New(nil)

	t.Run("General Fallback For Unmatched Text", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockRepo{}, "default_user", firstTemplate)

		out, err := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{Text: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != nlp.IntentGeneralHealth {
			t.Errorf("intent = %s, want general_health", out.Intent)
		}
		if len(out.Entities) != 0 {
			t.Errorf("expected no entities, got %v", out.Entities)
		}
		if !strings.Contains(out.Response, "holistic journey") {
			t.Errorf("expected first general template, got %q", out.Response)
		}
	})

	t.Run("Deterministic Under Fixed Picker", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockRepo{}, "default_user", firstTemplate)

		first, _ := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{Text: "sleep tips"})
		second, _ := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{Text: "sleep tips"})
		if first.Response != second.Response {
			t.Errorf("composition must be deterministic under a fixed picker")
		}
	})

	t.Run("Entity Clauses In Entity Order", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockRepo{}, "default_user", firstTemplate)

		out, err := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{
			Text: "gym workout with cardio and protein for 45 minutes",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != nlp.IntentFitnessAdvice {
			t.Fatalf("intent = %s, want fitness_advice", out.Intent)
		}

		proteinIdx := strings.Index(out.Response, "Focusing on protein")
		cardioIdx := strings.Index(out.Response, "Cardio is a fantastic way")
		minutesIdx := strings.Index(out.Response, "Aiming for 45 minutes")
		if proteinIdx == -1 || cardioIdx == -1 || minutesIdx == -1 {
			t.Fatalf("missing entity clauses in %q", out.Response)
		}
		if !(proteinIdx < cardioIdx && cardioIdx < minutesIdx) {
			t.Errorf("clauses out of entity order in %q", out.Response)
		}
	})

	t.Run("Cardinal Clause Differs By Intent", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockRepo{}, "default_user", firstTemplate)

		out, _ := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{
			Text: "I ate 2000 calories of food",
		})
		if out.Intent != nlp.IntentDietaryAdvice {
			t.Fatalf("intent = %s, want dietary_advice", out.Intent)
		}
		if !strings.Contains(out.Response, "Tracking 2000 units of your intake") {
			t.Errorf("expected dietary cardinal clause, got %q", out.Response)
		}
	})

	t.Run("Cardinal Ignored For Other Intents", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, extractor, &mockRepo{}, "default_user", firstTemplate)

		out, _ := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{
			Text: "I only slept 4 hours last night",
		})
		if out.Intent != nlp.IntentSleepAdvice {
			t.Fatalf("intent = %s, want sleep_advice", out.Intent)
		}
		if strings.Contains(out.Response, "Tracking 4") || strings.Contains(out.Response, "Aiming for 4") {
			t.Errorf("cardinal clause must not fire for sleep intent: %q", out.Response)
		}
	})

	t.Run("User Context From Matching Last Workout", func(t *testing.T) {
		repo := &mockRepo{
			listFunc: func(userID string) ([]model.ActivityLogEntry, error) {
				return []model.ActivityLogEntry{
					{UserID: userID, ActivityType: model.ActivityMeal, Details: "Salad"},
					{UserID: userID, ActivityType: model.ActivityWorkout, Details: "Yoga"},
				}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, extractor, repo, "default_user", firstTemplate)

		out, _ := uc.AnalyzeQuery(ctx, model.Scope{UserID: "alice"}, assistant.AnalyzeInput{
			Text: "suggest a workout",
		})
		if !strings.Contains(out.Response, "recently did a Yoga workout") {
			t.Errorf("expected workout context clause, got %q", out.Response)
		}
	})

	t.Run("No Context When Last Entry Type Mismatches Intent", func(t *testing.T) {
		repo := &mockRepo{
			listFunc: func(userID string) ([]model.ActivityLogEntry, error) {
				return []model.ActivityLogEntry{
					{UserID: userID, ActivityType: model.ActivityMeal, Details: "Salad"},
				}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, extractor, repo, "default_user", firstTemplate)

		out, _ := uc.AnalyzeQuery(ctx, model.Scope{UserID: "alice"}, assistant.AnalyzeInput{
			Text: "suggest a workout",
		})
		if strings.Contains(out.Response, "Salad") {
			t.Errorf("meal entry must not personalize a fitness query: %q", out.Response)
		}
	})

	t.Run("Missing User Resolves To Default", func(t *testing.T) {
		repo := &mockRepo{
			listFunc: func(userID string) ([]model.ActivityLogEntry, error) {
				if userID != "default_user" {
					t.Errorf("userID = %q, want default_user", userID)
				}
				return []model.ActivityLogEntry{
					{UserID: userID, ActivityType: model.ActivityWorkout, Details: "Gym"},
				}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, extractor, repo, "default_user", firstTemplate)

		out, err := uc.AnalyzeQuery(ctx, model.Scope{}, assistant.AnalyzeInput{Text: "suggest a workout"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Response, "recently did a Gym workout") {
			t.Errorf("expected default user's context clause, got %q", out.Response)
		}
	})

	t.Run("Repository Failure Propagates", func(t *testing.T) {
		repo := &mockRepo{
			listFunc: func(userID string) ([]model.ActivityLogEntry, error) {
				return nil, errors.New("store down")
			},
		}
		uc := usecase.New(&mockLogger{}, extractor, repo, "default_user", firstTemplate)

		if _, err := uc.AnalyzeQuery(ctx, model.Scope{UserID: "alice"}, assistant.AnalyzeInput{Text: "workout"}); err == nil {
			t.Errorf("expected error")
		}
	})
}
