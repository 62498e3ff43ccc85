package http

import (
	"github.com/gin-gonic/gin"

	"wellora-backend/internal/model"
	"wellora-backend/pkg/response"
)

// Query godoc
// @Summary     Analyze a health query
// @Description Classifies the query's intent, extracts entities, and composes a personalized response.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Query text"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: req.UserID}
	output, err := h.uc.AnalyzeQuery(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeQuery: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newQueryResp(output))
}
