package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All calendar routes require a resolved caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/cursor", mw.Auth(), h.Cursor)
		cal.GET("/grid", mw.Auth(), h.Grid)
		cal.PUT("/format", mw.Auth(), h.SetFormat)
		cal.POST("/navigate", mw.Auth(), h.Navigate)
		cal.PUT("/filter", mw.Auth(), h.SetFilter)
		cal.PUT("/color", mw.Auth(), h.SetColor)
	}
}
