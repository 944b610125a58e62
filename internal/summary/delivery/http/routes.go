package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	summaries := rg.Group("/summaries")
	{
		summaries.GET("/", h.List)
		summaries.POST("/", h.Create)
		summaries.GET("/search", h.Search)
		summaries.GET("/stats/count", h.Count)
		summaries.GET("/:id", h.Detail)
		summaries.PUT("/:id", h.Update)
		summaries.DELETE("/:id", h.Delete)
	}

	rg.POST("/generate-summary", h.GenerateSummary)
}
