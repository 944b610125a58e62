package http

import (
	"github.com/gin-gonic/gin"

	"productivity-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns a page of tasks, newest first, optionally filtered to start_date <= date_worked < end_date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param       end_date   query string false "Exclusive upper bound (YYYY-MM-DD)"
// @Param       limit      query int    false "Page size, 1-100 (default: 100)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/ [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Logs a new task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task; omitted fields keep their stored value.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, "Task deleted successfully")
}

// Count godoc
// @Summary     Count tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} countResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/stats/count [GET]
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.Count(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Count: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, countResp{TotalTasks: n})
}

// CalculateStats godoc
// @Summary     Calculate task statistics
// @Description Aggregates the posted tasks: totals, focus distribution and time by focus.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body []statsTaskReq true "Tasks to analyse"
// @Success     200 {object} analytics.Stats
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/stats/calculate [POST]
func (h *handler) CalculateStats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalculateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.uc.CalculateStats(ctx, toTasks(req))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, stats)
}
