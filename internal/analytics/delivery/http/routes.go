package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All analytics routes require a resolved caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	charts := rg.Group("/analytics")
	{
		charts.GET("/line", mw.Auth(), h.Line)
		charts.GET("/pie", mw.Auth(), h.Pie)
		charts.GET("/upcoming", mw.Auth(), h.Upcoming)
		charts.GET("/timerange", mw.Auth(), h.TimeRange)
	}
}
