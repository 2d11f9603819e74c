package http

import (
	"github.com/gin-gonic/gin"

	"timeplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Registration and listing are open; sign-out needs a resolved caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", h.List)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/signout", mw.Auth(), h.SignOut)
	}
}
