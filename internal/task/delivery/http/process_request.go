package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"productivity-tracker/pkg/response"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, response.NewValidationError(err)
	}
	return req, nil
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.NewValidationError(err)
	}
	if err := req.validate(); err != nil {
		return req, response.NewValidationError(err)
	}
	return req, nil
}

// processUpdateReq binds and validates the update task body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewValidationError(err)
	}
	req.ID = id
	if err := req.validate(); err != nil {
		return req, response.NewValidationError(err)
	}
	return req, nil
}

// processCalculateReq binds the array of tasks to aggregate.
func (h *handler) processCalculateReq(c *gin.Context) ([]statsTaskReq, error) {
	var req []statsTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, response.NewValidationError(err)
	}
	return req, nil
}

// processID parses the :id path parameter.
func (h *handler) processID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewValidationError(errInvalidID)
	}
	return uint(id), nil
}
