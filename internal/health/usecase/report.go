package usecase

import (
	"context"
	"fmt"
	"math"

	"wellora-backend/internal/health"
	"wellora-backend/internal/recommender"
)

// veganSupplementLine is appended last when the dietary preferences include
// vegan. It is a report-level rule, deliberately outside the recommender.
const veganSupplementLine = "Ensure adequate B12 and Iron intake through fortified foods or supplements."

// GenerateReport computes the full health report for a profile.
func (uc *implUseCase) GenerateReport(ctx context.Context, input health.ReportInput) (health.ReportOutput, error) {
	bmi, category, err := recommender.CalculateBMI(input.WeightKg, input.HeightCm)
	if err != nil {
		return health.ReportOutput{}, fmt.Errorf("%w: %v", health.ErrInvalidProfile, err)
	}

	tdee, err := recommender.EstimateTDEE(input.WeightKg, input.HeightCm, input.Age, input.ActivityLevel)
	if err != nil {
		return health.ReportOutput{}, fmt.Errorf("%w: %v", health.ErrInvalidProfile, err)
	}

	recommendations := recommender.GenerateRecommendations(category, tdee, input.HealthGoals)
	if containsString(input.DietaryPreferences, "vegan") {
		recommendations = append(recommendations, veganSupplementLine)
	}

	uc.l.Infof(ctx, "health.GenerateReport: category=%s tdee=%.1f goals=%d",
		category, tdee, len(input.HealthGoals))

	return health.ReportOutput{
		BMI:             math.Round(bmi*100) / 100,
		BMICategory:     category,
		DailyCalories:   int(math.Round(tdee)),
		Recommendations: recommendations,
		Charts:          recommender.GenerateChartData(tdee),
	}, nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
