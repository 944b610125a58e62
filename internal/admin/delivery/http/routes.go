package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	a := rg.Group("/admin")
	{
		a.POST("/generate-sample-data", h.GenerateSampleData)
		a.GET("/health", h.Health)
	}
}
