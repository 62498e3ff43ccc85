package health

import "wellora-backend/internal/recommender"

// ReportInput is the full profile a health report is computed from.
type ReportInput struct {
	Age                int
	WeightKg           float64
	HeightCm           float64
	ActivityLevel      string
	DietaryPreferences []string
	HealthGoals        []string
}

// ReportOutput is the generated health report.
type ReportOutput struct {
	BMI             float64 // Rounded to 2 decimals
	BMICategory     recommender.Category
	DailyCalories   int // Rounded TDEE
	Recommendations []string
	Charts          recommender.ChartData
}

// ScoreInput is the partial profile for health-score calculation. Nil
// fields count as missing and degrade the score instead of failing.
type ScoreInput struct {
	Age      *int
	WeightKg *float64
	HeightCm *float64
}

// ScoreBreakdown exposes each score component for transparency.
type ScoreBreakdown struct {
	Profile     int `json:"profile"`
	BMI         int `json:"bmi"`
	Activity    int `json:"activity"`
	Consistency int `json:"consistency"`
}

// ScoreOutput is the composite health score with feedback.
type ScoreOutput struct {
	Score     int
	Label     string
	Color     string
	Feedback  []string
	Breakdown ScoreBreakdown
}
