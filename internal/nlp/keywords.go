package nlp

// intentKeywords maps each intent to its trigger keywords. Enumeration order
// is fixed: scoring ties resolve to the first intent in this table, so the
// order is part of the contract, not cosmetic.
//
// Matching is case-insensitive substring matching, not tokenized. That means
// "ach" matches inside "headache" and "stomach" alike — a known limitation
// kept for parity with the shipped behavior.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentDietaryAdvice, []string{"diet", "food", "nutrition", "eat", "meal", "protein", "calories", "fat", "carbs", "sugar", "vitamin", "recipe", "healthy", "snack"}},
	{IntentFitnessAdvice, []string{"exercise", "workout", "fitness", "run", "gym", "cardio", "strength", "training", "workout", "walk", "jog", "lift", "squat", "pushup", "muscle"}},
	{IntentSleepAdvice, []string{"sleep", "tired", "insomnia", "rest", "nap", "bedtime", "night", "awake", "exhausted", "dream", "snore"}},
	{IntentMentalHealth, []string{"stress", "anxiety", "meditation", "relaxed", "mental", "mood", "happy", "sad", "unmotivated", "depressed", "therapy", "peace", "calm", "focus"}},
	{IntentHydrationAdvice, []string{"water", "drink", "hydration", "thirsty", "dehydration", "liquid", "bottle", "fluid"}},
	{IntentWeightAdvice, []string{"weight", "fat", "lose", "gain", "muscle", "mass", "bmi", "heavy", "thin", "scale", "obese"}},
	{IntentSpiritualHealth, []string{"spirit", "soul", "purpose", "meaning", "connection", "inner", "universe", "yoga", "breathe", "gratitude", "nature", "meditation", "mindfulness"}},
	{IntentPainPoints, []string{"pain", "hurt", "headache", "backache", "sore", "tired", "fatigue", "stressed", "anxious", "low energy", "insomnia", "bloated", "cramp"}},
}

// painKeywords feed the PAIN_TYPE entity scan. Each substring match yields
// one entity carrying the keyword text verbatim.
var painKeywords = []string{
	"headache", "backache", "back pain", "neck pain", "sore",
	"bloated", "cramp", "ach", "stress", "anxiety",
}
