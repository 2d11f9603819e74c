package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/feed/calendar.ics", mw.Auth(), h.Calendar)
}
