package sync

import (
	"timeplanner/internal/task/repository"
	pkgLog "timeplanner/pkg/log"
)

// Executor applies write plans against the persistence gateway.
type Executor struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
}

// NewExecutor creates a plan executor.
func NewExecutor(l pkgLog.Logger, repo repository.TaskRepository) *Executor {
	return &Executor{l: l, repo: repo}
}
