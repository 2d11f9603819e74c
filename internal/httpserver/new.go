package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timeplanner/internal/analytics"
	"timeplanner/internal/calendar"
	"timeplanner/internal/middleware"
	"timeplanner/internal/task"
	"timeplanner/internal/user"
	pkgLog "timeplanner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	userUC      user.UseCase
	taskUC      task.UseCase
	calendarUC  calendar.UseCase
	analyticsUC analytics.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	UserUC      user.UseCase
	TaskUC      task.UseCase
	CalendarUC  calendar.UseCase
	AnalyticsUC analytics.UseCase
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		userUC:      cfg.UserUC,
		taskUC:      cfg.TaskUC,
		calendarUC:  cfg.CalendarUC,
		analyticsUC: cfg.AnalyticsUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.userUC == nil || srv.taskUC == nil || srv.calendarUC == nil || srv.analyticsUC == nil {
		return errors.New("all usecases are required")
	}
	return nil
}
