package assistant

import "wellora-backend/internal/nlp"

// AnalyzeInput is the raw user query.
type AnalyzeInput struct {
	Text string
}

// AnalyzeOutput is the analysis result with the composed response.
type AnalyzeOutput struct {
	Intent   nlp.Intent
	Entities []nlp.Entity
	Response string
}
