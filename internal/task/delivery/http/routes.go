package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Collection routes are registered with a trailing slash; gin redirects the bare form.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("/", h.List)
		tasks.POST("/", h.Create)
		tasks.GET("/stats/count", h.Count)
		tasks.POST("/stats/calculate", h.CalculateStats)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
