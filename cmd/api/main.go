package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timeplanner/config"
	_ "timeplanner/docs" // Swagger docs
	analyticsUsecase "timeplanner/internal/analytics/usecase"
	calendarUsecase "timeplanner/internal/calendar/usecase"
	"timeplanner/internal/httpserver"
	"timeplanner/internal/middleware"
	"timeplanner/internal/store"
	"timeplanner/internal/sync"
	taskRepo "timeplanner/internal/task/repository"
	taskFirestore "timeplanner/internal/task/repository/firestore"
	taskMemory "timeplanner/internal/task/repository/memory"
	taskUsecase "timeplanner/internal/task/usecase"
	"timeplanner/internal/timegrid"
	userRepo "timeplanner/internal/user/repository"
	userFirestore "timeplanner/internal/user/repository/firestore"
	userMemory "timeplanner/internal/user/repository/memory"
	userUsecase "timeplanner/internal/user/usecase"
	"timeplanner/pkg/log"
)

// @title       Time Planner API
// @description Multi-user calendar and task planner with shared-task invitations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Time Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage backend: %s", cfg.Storage.Backend)

	// 3. Persistence gateway
	var (
		tasks taskRepo.TaskRepository
		users userRepo.Repository
	)
	switch cfg.Storage.Backend {
	case "firestore":
		client, err := taskFirestore.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			logger.Fatalf(ctx, "Failed to dial Firestore: %v", err)
			return
		}
		defer client.Close()
		tasks = taskFirestore.New(logger, client)
		users = userFirestore.New(logger, client)
	default:
		logger.Warn(ctx, "Using in-memory storage, nothing survives a restart")
		tasks = taskMemory.New()
		users = userMemory.New()
	}

	// 4. Core services
	executor := sync.NewExecutor(logger, tasks)
	stores := store.NewRegistry(logger, tasks)
	grids := timegrid.NewCache()

	// 5. UseCases
	userUC := userUsecase.New(logger, users, stores)
	taskUC := taskUsecase.New(logger, tasks, executor, stores, userUC)
	calendarUC := calendarUsecase.New(logger, stores, grids)
	analyticsUC := analyticsUsecase.New(logger, stores)

	// 6. Middleware
	mw := middleware.New(logger, userUC, cfg.RateLimit.RequestsPerMin)

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		UserUC:      userUC,
		TaskUC:      taskUC,
		CalendarUC:  calendarUC,
		AnalyticsUC: analyticsUC,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to build http server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
