package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"wellora-backend/internal/assistant"
	"wellora-backend/internal/model"
	"wellora-backend/internal/nlp"
)

// AnalyzeQuery classifies the query, extracts entities, and composes the
// personalized response: base template + per-entity clauses in entity
// order + at most one user-context clause from the activity log.
func (uc *implUseCase) AnalyzeQuery(ctx context.Context, sc model.Scope, input assistant.AnalyzeInput) (assistant.AnalyzeOutput, error) {
	intent := uc.extractor.DetectIntent(input.Text)
	entities := uc.extractor.ExtractEntities(input.Text)

	pool := assistant.TemplatePool(intent)
	base := pool[uc.intn(len(pool))]

	var b strings.Builder
	b.WriteString(base)
	for _, ent := range entities {
		b.WriteString(entityClause(intent, ent))
	}

	userID := sc.UserID
	if userID == "" {
		userID = uc.defaultUserID
	}

	userContext, err := uc.userContextClause(ctx, userID, intent)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.AnalyzeQuery: user context lookup failed: %v", err)
		return assistant.AnalyzeOutput{}, fmt.Errorf("failed to read activity history: %w", err)
	}
	b.WriteString(userContext)

	uc.l.Infof(ctx, "assistant.AnalyzeQuery: user=%s intent=%s entities=%d", userID, intent, len(entities))

	return assistant.AnalyzeOutput{
		Intent:   intent,
		Entities: entities,
		Response: b.String(),
	}, nil
}

// entityClause renders the personalization clause for one entity. CARDINAL
// entities only contribute for dietary and fitness intents, with wording
// per intent; labels from an external tagger contribute nothing.
func entityClause(intent nlp.Intent, ent nlp.Entity) string {
	switch ent.Label {
	case nlp.LabelNutrient:
		return fmt.Sprintf("\n\nFocusing on %s is a great choice! It's essential for your body's recovery and energy levels.", ent.Text)
	case nlp.LabelActivity:
		return fmt.Sprintf("\n\n%s is a fantastic way to boost your mood and cardiovascular health!", capitalize(ent.Text))
	case nlp.LabelPainType:
		return fmt.Sprintf("\n\nI'm sorry to hear about your %s. Please take it slow and don't push through sharp pain.", ent.Text)
	case nlp.LabelCardinal:
		switch intent {
		case nlp.IntentDietaryAdvice:
			return fmt.Sprintf("\n\nTracking %s units of your intake can help you stay on target with your goals.", ent.Text)
		case nlp.IntentFitnessAdvice:
			return fmt.Sprintf("\n\nAiming for %s minutes is a solid plan. Consistency over intensity is the secret!", ent.Text)
		}
	}
	return ""
}

// userContextClause builds the clause referencing the user's most recent
// log entry, only when its type matches the intent's domain. An empty
// user id means no lookup at all.
func (uc *implUseCase) userContextClause(ctx context.Context, userID string, intent nlp.Intent) (string, error) {
	if userID == "" {
		return "", nil
	}

	entries, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	last := entries[len(entries)-1]
	switch {
	case intent == nlp.IntentFitnessAdvice && last.ActivityType == model.ActivityWorkout:
		return fmt.Sprintf("\n\nI see you recently did a %s workout. Keep up that momentum!", last.Details), nil
	case intent == nlp.IntentDietaryAdvice && last.ActivityType == model.ActivityMeal:
		return fmt.Sprintf("\n\nI noticed your last logged meal was %s. Great job tracking your intake!", last.Details), nil
	}
	return "", nil
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
