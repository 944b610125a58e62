package http

import (
	"github.com/gin-gonic/gin"

	"productivity-tracker/pkg/response"
)

// List godoc
// @Summary     List weekly summaries
// @Description Returns a page of summaries ordered by week_start, newest first. With both dates the
// @Description week_start range is inclusive; start_date alone selects that week; end_date alone is an upper bound.
// @Tags        Summaries
// @Produce     json
// @Param       start_date query string false "Week start lower bound (YYYY-MM-DD)"
// @Param       end_date   query string false "Week start upper bound (YYYY-MM-DD)"
// @Param       limit      query int    false "Page size, 1-100 (default: 10)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/summaries/ [GET]
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
// @Summary     Generate a weekly summary
// @Description Writes a summary of the posted week with the AI coach, stores it (replacing any summary
// @Description of the same week) and indexes it for search.
// @Tags        Summaries
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Week to summarise"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "AI generation failed"
// @Router      /api/summaries/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(s))
}

// GenerateSummary godoc
// @Summary     Generate a weekly summary (legacy shape)
// @Description Same as POST /api/summaries/ but responds with only the summary text and recommendations.
// @Tags        Summaries
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Week to summarise"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "AI generation failed"
// @Router      /api/generate-summary [POST]
func (h *handler) GenerateSummary(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, generateResp{Summary: s.Summary, Recommendations: newSummaryResp(s).Recommendations})
}

// Search godoc
// @Summary     Search weekly summaries
// @Description Finds summaries relevant to a free-text query. Uses vector similarity when configured and
// @Description keyword scoring otherwise. The engine used is reported in the X-Search-Mode header.
// @Tags        Summaries
// @Produce     json
// @Param       query query string false "Search text"
// @Param       sort  query string false "relevance, date, tasks or hours (default: relevance)"
// @Param       limit query int    false "Maximum results, 1-100 (default: 10)"
// @Success     200 {array}  searchResultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/summaries/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(searchModeHeader, string(output.Mode))
	response.OK(c, h.newSearchResp(output))
}

// Detail godoc
// @Summary     Get a weekly summary
// @Tags        Summaries
// @Produce     json
// @Param       id path int true "Summary ID"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/summaries/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(s))
}

// Update godoc
// @Summary     Update a weekly summary
// @Description Partially updates a summary. Changing the text or recommendations re-indexes it for search.
// @Tags        Summaries
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Summary ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/summaries/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(s))
}

// Delete godoc
// @Summary     Delete a weekly summary
// @Tags        Summaries
// @Produce     json
// @Param       id path int true "Summary ID"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/summaries/{id} [DELETE]
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

	response.Message(c, "Summary deleted successfully")
}

// Count godoc
// @Summary     Count weekly summaries
// @Tags        Summaries
// @Produce     json
// @Success     200 {object} countResp
// @Router      /api/summaries/stats/count [GET]
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.Count(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Count: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, countResp{TotalSummaries: n})
}
