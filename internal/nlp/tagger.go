package nlp

// Tagger is an optional named-entity recognizer. Implementations contribute
// (label, text) pairs from their own taxonomy on top of the built-in rules.
type Tagger interface {
	Tag(text string) []Entity
}

// NoopTagger is the null-object Tagger used when no external recognizer is
// available. The extractor must behave identically minus tagger entities.
type NoopTagger struct{}

// Tag always returns no entities.
func (NoopTagger) Tag(text string) []Entity { return nil }
