package usecase

import (
	"context"
	"fmt"

	"wellora-backend/internal/health"
	"wellora-backend/internal/model"
	"wellora-backend/internal/recommender"
)

// Component maxima and banding colors for the health score.
const (
	maxProfileScore     = 20
	maxBMIScore         = 30
	maxActivityScore    = 30
	maxConsistencyScore = 20

	colorGreen  = "#4CAF50"
	colorAmber  = "#FFC107"
	colorOrange = "#FF9800"
	colorRed    = "#F44336"
)

// CalculateScore computes the composite health score. Missing profile
// fields skip their component and add feedback instead of failing.
func (uc *implUseCase) CalculateScore(ctx context.Context, sc model.Scope, input health.ScoreInput) (health.ScoreOutput, error) {
	userID := sc.UserID
	if userID == "" {
		userID = uc.defaultUserID
	}

	feedback := []string{}

	// 1. Profile completeness (max 20)
	profileScore := 0
	if input.Age != nil {
		profileScore += 7
	}
	if input.WeightKg != nil {
		profileScore += 7
	}
	if input.HeightCm != nil {
		profileScore += 6
	}
	if profileScore < maxProfileScore {
		feedback = append(feedback, "Complete your profile to improve your score!")
	}

	// 2. BMI component (max 30)
	bmiScore := 0
	if input.WeightKg != nil && input.HeightCm != nil {
		_, category, err := recommender.CalculateBMI(*input.WeightKg, *input.HeightCm)
		if err != nil {
			// Unusable measurements degrade like missing ones.
			uc.l.Warnf(ctx, "health.CalculateScore: invalid measurements for user=%s: %v", userID, err)
			feedback = append(feedback, "Add your weight and height to track BMI.")
		} else {
			switch category {
			case recommender.CategoryNormal:
				bmiScore = maxBMIScore
			case recommender.CategoryUnderweight, recommender.CategoryOverweight:
				bmiScore = 20
				feedback = append(feedback, fmt.Sprintf("Your BMI is %s. Consider consulting a nutritionist.", category))
			default: // Obese
				bmiScore = 10
				feedback = append(feedback, "Focus on balanced nutrition and regular exercise.")
			}
		}
	} else {
		feedback = append(feedback, "Add your weight and height to track BMI.")
	}

	// 3. Activity engagement (max 30): 5 points per logged activity.
	logCount, err := uc.activityRepo.CountByUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "health.CalculateScore: count failed: %v", err)
		return health.ScoreOutput{}, fmt.Errorf("failed to read activity history: %w", err)
	}
	activityScore := min(logCount*5, maxActivityScore)
	if activityScore < 15 {
		feedback = append(feedback, "Log more meals and workouts to boost your score!")
	}

	// 4. Consistency (max 20). Reuses the same log count at 3 points per
	// activity — a placeholder, not a real day-to-day regularity measure.
	consistencyScore := min(logCount*3, maxConsistencyScore)

	score := min(profileScore+bmiScore+activityScore+consistencyScore, 100)
	label, color := scoreBand(score)

	return health.ScoreOutput{
		Score:    score,
		Label:    label,
		Color:    color,
		Feedback: feedback,
		Breakdown: health.ScoreBreakdown{
			Profile:     profileScore,
			BMI:         bmiScore,
			Activity:    activityScore,
			Consistency: consistencyScore,
		},
	}, nil
}

// scoreBand maps a total score to its label and color. Bands are inclusive
// on the lower bound, first match wins.
func scoreBand(score int) (string, string) {
	switch {
	case score >= 80:
		return "Excellent", colorGreen
	case score >= 60:
		return "Good", colorAmber
	case score >= 40:
		return "Fair", colorOrange
	default:
		return "Needs Improvement", colorRed
	}
}
