package http

import (
	"github.com/gin-gonic/gin"

	"productivity-tracker/internal/admin"
	"productivity-tracker/pkg/response"
)

// GenerateSampleData godoc
// @Summary     Generate sample data
// @Description Deletes every task and summary, then generates 60 days of sample tasks and one summary per week.
// @Tags        Admin
// @Produce     json
// @Success     200 {object} seedResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/admin/generate-sample-data [POST]
func (h *handler) GenerateSampleData(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Seed(ctx, admin.SeedInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.Seed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSeedResp(out))
}

// Health godoc
// @Summary     Admin health check
// @Tags        Admin
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/admin/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, healthResp{Status: "healthy"})
}
