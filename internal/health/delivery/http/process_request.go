package http

import (
	"github.com/gin-gonic/gin"
)

// processReportReq binds and validates the health report request body.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScoreReq binds and validates the health score request body.
// All profile fields are optional by design.
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
