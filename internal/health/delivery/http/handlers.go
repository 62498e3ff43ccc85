package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wellora-backend/internal/health"
	"wellora-backend/internal/model"
	"wellora-backend/pkg/response"
)

// Report godoc
// @Summary     Generate a health report
// @Description Computes BMI, daily calories, recommendations, and chart data from a profile.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Param       body body reportReq true "Profile data"
// @Success     200 {object} reportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/health/report [POST]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GenerateReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateReport: %v", err)
		if errors.Is(err, health.ErrInvalidProfile) {
			response.Error(c, err, nil)
		} else {
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, h.newReportResp(output))
}

// Score godoc
// @Summary     Calculate health score
// @Description Computes the composite 0-100 health score from a partial profile and logged activity.
// @Tags        Health
// @Accept      json
// @Produce     json
// @Param       body body scoreReq true "Partial profile"
// @Success     200 {object} scoreResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/health/score [POST]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: req.UserID}
	output, err := h.uc.CalculateScore(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalculateScore: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newScoreResp(output))
}
