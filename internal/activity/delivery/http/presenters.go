package http

import (
	"wellora-backend/internal/activity"
)

// --- Request DTOs ---

type logReq struct {
	UserID       string  `json:"user_id"`
	ActivityType string  `json:"activity_type" binding:"required"`
	Details      string  `json:"details"`
	Value        float64 `json:"value"`
}

func (r logReq) validate() error { return nil }

func (r logReq) toInput() activity.LogInput {
	return activity.LogInput{
		ActivityType: r.ActivityType,
		Details:      r.Details,
		Value:        r.Value,
	}
}

// ---

type historyReq struct {
	UserID string `form:"user_id"`
}

func (r historyReq) validate() error { return nil }

// --- Response DTOs ---

type logResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *handler) newLogResp(out activity.LogOutput) logResp {
	return logResp{
		Status:  "success",
		Message: out.Message,
	}
}

type historyResp struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

func (h *handler) newHistoryResp(out activity.WeeklyHistoryOutput) historyResp {
	return historyResp{
		Labels: out.Labels,
		Data:   out.Data,
	}
}
