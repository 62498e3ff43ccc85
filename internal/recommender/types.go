package recommender

// Category is the BMI bucket for a weight/height pair.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// Activity levels accepted by EstimateTDEE. Anything else silently falls
// back to the sedentary multiplier.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Health goals recognized by GenerateRecommendations, in the fixed order
// their advice lines are appended. Unrecognized goals are ignored.
const (
	GoalStressReduction     = "stress_reduction"
	GoalBetterSleep         = "better_sleep"
	GoalMuscleGain          = "muscle_gain"
	GoalSpiritualGrowth     = "spiritual_growth"
	GoalImprovedFlexibility = "improved_flexibility"
)

// MacroSplit is a macronutrient distribution for charting.
type MacroSplit struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// WeightProjection is a weekly cumulative weight-change series.
type WeightProjection struct {
	Weeks  []int     `json:"weeks"`
	Change []float64 `json:"change"`
}

// ChartData bundles the chart series returned with a health report.
type ChartData struct {
	Macros           MacroSplit       `json:"macros"`
	WeightProjection WeightProjection `json:"weight_projection"`
}
