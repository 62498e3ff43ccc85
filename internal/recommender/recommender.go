// Package recommender holds the pure health arithmetic: BMI categories,
// TDEE estimation, recommendation text, and chart series. Every function is
// a stateless transform of its inputs.
package recommender

import "fmt"

// activityMultipliers scales BMR to TDEE per self-reported activity level.
var activityMultipliers = map[string]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// CalculateBMI returns the body-mass index and its category.
// Non-positive weight or height is rejected rather than producing NaN/Inf.
func CalculateBMI(weightKg, heightCm float64) (float64, Category, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, "", ErrInvalidMeasurement
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	switch {
	case bmi < 18.5:
		return bmi, CategoryUnderweight, nil
	case bmi < 25:
		return bmi, CategoryNormal, nil
	case bmi < 30:
		return bmi, CategoryOverweight, nil
	default:
		return bmi, CategoryObese, nil
	}
}

// EstimateTDEE estimates Total Daily Energy Expenditure via the Mifflin-St
// Jeor equation (male-formula approximation) scaled by the activity
// multiplier. Unrecognized activity levels silently fall back to sedentary;
// that leniency is policy, not an error.
func EstimateTDEE(weightKg, heightCm float64, age int, activityLevel string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}
	if age < 0 {
		return 0, ErrInvalidAge
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + 5

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = activityMultipliers[ActivitySedentary]
	}

	return bmr * multiplier, nil
}

// GenerateRecommendations builds the ordered advice list: the BMI-category
// lines first, then one line per recognized goal in fixed goal order
// regardless of input order. The vegan supplementation line is a caller
// concern and is not appended here.
func GenerateRecommendations(category Category, tdee float64, goals []string) []string {
	recommendations := []string{}

	switch category {
	case CategoryOverweight, CategoryObese:
		recommendations = append(recommendations,
			fmt.Sprintf("Aim for a daily intake of %d calories mostly from whole foods.", int(tdee-500)),
			"Incorporate 30 minutes of moderate activity daily.",
		)
	case CategoryUnderweight:
		recommendations = append(recommendations,
			fmt.Sprintf("Aim for a daily surplus, target %d calories.", int(tdee+300)),
			"Focus on strength training to build muscle mass.",
		)
	default:
		recommendations = append(recommendations,
			fmt.Sprintf("Maintenance calories are approximately %d kcal.", int(tdee)),
		)
	}

	goalSet := make(map[string]bool, len(goals))
	for _, g := range goals {
		goalSet[g] = true
	}

	for _, row := range goalAdvice {
		if goalSet[row.goal] {
			recommendations = append(recommendations, row.advice)
		}
	}

	return recommendations
}

// goalAdvice fixes both the advice wording and the order goals appear in
// the recommendation list.
var goalAdvice = []struct {
	goal   string
	advice string
}{
	{GoalStressReduction, "Consider mindfulness practices or meditation 10 mins daily."},
	{GoalBetterSleep, "Limit caffeine intake after 2 PM and reduce blue light exposure at night."},
	{GoalMuscleGain, "Prioritize resistance training and aim for 1.6-2.2g of protein per kg of body weight."},
	{GoalSpiritualGrowth, "Set aside 10 quiet minutes daily for reflection, gratitude, or breathwork."},
	{GoalImprovedFlexibility, "Add 10-15 minutes of stretching or mobility work after each workout."},
}

// GenerateChartData builds the chart series shipped with a health report.
// The macro split is a fixed 30/40/30 protein/carbs/fat distribution and the
// projection assumes a flat 0.5 kg/week loss — known simplifications kept
// independent of the actual tdee.
func GenerateChartData(tdee float64) ChartData {
	weeks := make([]int, 12)
	change := make([]float64, 12)
	for i := range weeks {
		w := i + 1
		weeks[i] = w
		change[i] = -0.5 * float64(w)
	}

	return ChartData{
		Macros: MacroSplit{
			Labels: []string{"Protein", "Carbs", "Fats"},
			Data:   []float64{0.3, 0.4, 0.3},
		},
		WeightProjection: WeightProjection{
			Weeks:  weeks,
			Change: change,
		},
	}
}
