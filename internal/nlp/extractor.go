package nlp

import (
	"regexp"
	"strings"
)

// digitRunPattern matches maximal digit runs, e.g. "45" in "45 minutes".
const digitRunPattern = `\d+`

// Extractor classifies queries into intents and extracts typed entities.
type Extractor interface {
	// DetectIntent returns the single best-scoring intent for the text,
	// or IntentGeneralHealth when nothing scores.
	DetectIntent(text string) Intent

	// ExtractEntities returns all entity mentions found in the text.
	// Extraction is independent of intent detection and never deduplicates.
	ExtractEntities(text string) []Entity
}

type extractor struct {
	tagger Tagger
	digits *regexp.Regexp
}

// New creates an Extractor. A nil tagger degrades to the no-op tagger.
func New(tagger Tagger) Extractor {
	if tagger == nil {
		tagger = NoopTagger{}
	}
	return &extractor{
		tagger: tagger,
		digits: regexp.MustCompile(digitRunPattern),
	}
}

// DetectIntent scores every intent by literal substring occurrences of its
// keywords in the lower-cased text. Highest score wins; ties resolve to the
// first intent in table order.
func (e *extractor) DetectIntent(text string) Intent {
	textLower := strings.ToLower(text)

	best := IntentGeneralHealth
	bestScore := 0
	for _, row := range intentKeywords {
		score := 0
		for _, kw := range row.keywords {
			score += strings.Count(textLower, kw)
		}
		if score > bestScore {
			best = row.intent
			bestScore = score
		}
	}

	return best
}

// ExtractEntities runs, in order: the pluggable tagger, the fixed literal
// checks, the pain-keyword scan, and the digit-run scan. The digit scan runs
// over the original text; everything else matches case-insensitively.
func (e *extractor) ExtractEntities(text string) []Entity {
	entities := []Entity{}
	textLower := strings.ToLower(text)

	entities = append(entities, e.tagger.Tag(text)...)

	if strings.Contains(textLower, "protein") {
		entities = append(entities, Entity{Label: LabelNutrient, Text: "protein"})
	}
	if strings.Contains(textLower, "cardio") {
		entities = append(entities, Entity{Label: LabelActivity, Text: "cardio"})
	}

	for _, kw := range painKeywords {
		if strings.Contains(textLower, kw) {
			entities = append(entities, Entity{Label: LabelPainType, Text: kw})
		}
	}

	for _, num := range e.digits.FindAllString(text, -1) {
		entities = append(entities, Entity{Label: LabelCardinal, Text: num})
	}

	return entities
}
