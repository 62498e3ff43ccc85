package http

import (
	"github.com/gin-gonic/gin"

	"wellora-backend/internal/model"
	"wellora-backend/pkg/response"
)

// Log godoc
// @Summary     Log an activity
// @Description Appends a meal or workout entry to the user's activity log.
// @Tags        Activity
// @Accept      json
// @Produce     json
// @Param       body body logReq true "Activity data"
// @Success     200 {object} logResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/activity/logs [POST]
func (h *handler) Log(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: req.UserID}
	output, err := h.uc.Log(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Log: %v", err)
		if isValidationError(err) {
			response.Error(c, err, nil)
		} else {
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, h.newLogResp(output))
}

// History godoc
// @Summary     Weekly activity history
// @Description Returns workout minutes per weekday for the current week.
// @Tags        Activity
// @Produce     json
// @Param       user_id query string false "User ID (defaults to the shared demo user)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activity/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: req.UserID}
	output, err := h.uc.WeeklyHistory(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.WeeklyHistory: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
