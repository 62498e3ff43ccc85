package http

import (
	"wellora-backend/internal/health"
	"wellora-backend/internal/recommender"
)

// --- Request DTOs ---

type reportReq struct {
	Age                int      `json:"age"            binding:"required"`
	Weight             float64  `json:"weight"         binding:"required"`
	Height             float64  `json:"height"         binding:"required"`
	ActivityLevel      string   `json:"activity_level" binding:"required"`
	DietaryPreferences []string `json:"dietary_preferences"`
	HealthGoals        []string `json:"health_goals"`
}

func (r reportReq) validate() error { return nil }

func (r reportReq) toInput() health.ReportInput {
	return health.ReportInput{
		Age:                r.Age,
		WeightKg:           r.Weight,
		HeightCm:           r.Height,
		ActivityLevel:      r.ActivityLevel,
		DietaryPreferences: r.DietaryPreferences,
		HealthGoals:        r.HealthGoals,
	}
}

// ---

type scoreReq struct {
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	UserID string   `json:"user_id"`
}

func (r scoreReq) validate() error { return nil }

func (r scoreReq) toInput() health.ScoreInput {
	return health.ScoreInput{
		Age:      r.Age,
		WeightKg: r.Weight,
		HeightCm: r.Height,
	}
}

// --- Response DTOs ---

type reportResp struct {
	BMI             float64               `json:"bmi"`
	BMICategory     string                `json:"bmi_category"`
	DailyCalories   int                   `json:"daily_calories"`
	Recommendations []string              `json:"recommendations"`
	Charts          recommender.ChartData `json:"charts"`
}

func (h *handler) newReportResp(out health.ReportOutput) reportResp {
	return reportResp{
		BMI:             out.BMI,
		BMICategory:     string(out.BMICategory),
		DailyCalories:   out.DailyCalories,
		Recommendations: out.Recommendations,
		Charts:          out.Charts,
	}
}

type scoreResp struct {
	Score     int                   `json:"score"`
	Label     string                `json:"label"`
	Color     string                `json:"color"`
	Feedback  []string              `json:"feedback"`
	Breakdown health.ScoreBreakdown `json:"breakdown"`
}

func (h *handler) newScoreResp(out health.ScoreOutput) scoreResp {
	return scoreResp{
		Score:     out.Score,
		Label:     out.Label,
		Color:     out.Color,
		Feedback:  out.Feedback,
		Breakdown: out.Breakdown,
	}
}
