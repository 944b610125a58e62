package http

import (
	"github.com/gin-gonic/gin"

	"productivity-tracker/pkg/response"
)

func (h *handler) processRangeReq(c *gin.Context) (rangeReq, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.NewValidationError(err)
	}
	return req, nil
}

func (h *handler) processWeeksReq(c *gin.Context) (weeksReq, error) {
	var req weeksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, response.NewValidationError(err)
	}
	return req, nil
}
