package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	a := rg.Group("/analytics")
	{
		a.GET("/range", h.Range)
		a.GET("/weeks", h.Weeks)
	}
}
