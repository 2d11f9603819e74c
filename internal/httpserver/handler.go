package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analyticsHTTP "timeplanner/internal/analytics/delivery/http"
	calendarHTTP "timeplanner/internal/calendar/delivery/http"
	feedHTTP "timeplanner/internal/feed/delivery/http"
	"timeplanner/internal/model"
	taskHTTP "timeplanner/internal/task/delivery/http"
	userHTTP "timeplanner/internal/user/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "running in production mode")
	} else {
		srv.l.Infof(ctx, "running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, srv.userUC), srv.mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), srv.mw)
	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC), srv.mw)
	analyticsHTTP.RegisterRoutes(api, analyticsHTTP.New(srv.l, srv.analyticsUC), srv.mw)
	feedHTTP.RegisterRoutes(api, feedHTTP.New(srv.l, srv.taskUC), srv.mw)
}
