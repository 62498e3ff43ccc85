package http

import (
	"github.com/gin-gonic/gin"
)

// processLogReq binds and validates the log activity request body.
func (h *handler) processLogReq(c *gin.Context) (logReq, error) {
	var req logReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
