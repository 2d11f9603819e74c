package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require a resolved caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.PUT("/:id", mw.Auth(), h.Edit)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
