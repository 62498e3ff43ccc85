package nlp

// Intent is the single topical category assigned to a user query.
type Intent string

const (
	IntentDietaryAdvice   Intent = "dietary_advice"
	IntentFitnessAdvice   Intent = "fitness_advice"
	IntentSleepAdvice     Intent = "sleep_advice"
	IntentMentalHealth    Intent = "mental_health"
	IntentHydrationAdvice Intent = "hydration_advice"
	IntentWeightAdvice    Intent = "weight_advice"
	IntentSpiritualHealth Intent = "spiritual_health"
	IntentPainPoints      Intent = "pain_points"

	// IntentGeneralHealth is the fallback when no keyword scores.
	IntentGeneralHealth Intent = "general_health"
)

// Entity labels produced by the built-in extraction rules. An external
// Tagger may contribute labels outside this set.
const (
	LabelNutrient = "NUTRIENT"
	LabelActivity = "ACTIVITY"
	LabelPainType = "PAIN_TYPE"
	LabelCardinal = "CARDINAL"
)

// Entity is a labeled span of text extracted from a query.
type Entity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
