package http

import (
	"wellora-backend/internal/assistant"
	"wellora-backend/internal/nlp"
)

// --- Request DTOs ---

type queryReq struct {
	Text   string `json:"text" binding:"required"`
	UserID string `json:"user_id"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() assistant.AnalyzeInput {
	return assistant.AnalyzeInput{
		Text: r.Text,
	}
}

// --- Response DTOs ---

type queryResp struct {
	Intent   string       `json:"intent"`
	Entities []nlp.Entity `json:"entities"`
	Response string       `json:"response"`
}

func (h *handler) newQueryResp(out assistant.AnalyzeOutput) queryResp {
	entities := out.Entities
	if entities == nil {
		entities = []nlp.Entity{}
	}
	return queryResp{
		Intent:   string(out.Intent),
		Entities: entities,
		Response: out.Response,
	}
}
