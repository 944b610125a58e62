package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"productivity-tracker/pkg/response"
)

// Range godoc
// @Summary     Range analytics
// @Description Resolves a range keyword against today and returns the daily chart buckets, the heatmap and
// @Description the statistics of the stored tasks inside it. Unknown keywords resolve to week.
// @Tags        Analytics
// @Produce     json
// @Param       range query string false "week, month, quarter or all (default: week)"
// @Success     200 {object} rangeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/analytics/range [GET]
func (h *handler) Range(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RangeReport(ctx, req.toInput(time.Now().In(h.cal.Location())))
	if err != nil {
		h.l.Errorf(ctx, "uc.RangeReport: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRangeResp(output))
}

// Weeks godoc
// @Summary     Weekly breakdown
// @Description Lists the weeks between start_date and end_date, newest first, with their tasks, stats and
// @Description the stored summary keyed by week_start (null when none). Defaults to the last 26 weeks.
// @Tags        Analytics
// @Produce     json
// @Param       start_date query string false "First day (YYYY-MM-DD)"
// @Param       end_date   query string false "Last day (YYYY-MM-DD)"
// @Success     200 {object} weeksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/analytics/weeks [GET]
func (h *handler) Weeks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeeksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Weeks(ctx, req.toInput(time.Now().In(h.cal.Location())))
	if err != nil {
		h.l.Errorf(ctx, "uc.Weeks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWeeksResp(output))
}
