package usecase

import (
	"time"

	"github.com/google/uuid"

	"timeplanner/internal/store"
	"timeplanner/internal/sync"
	"timeplanner/internal/task/repository"
	"timeplanner/internal/user"
	pkgLog "timeplanner/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	executor *sync.Executor
	stores   *store.Registry
	users    user.UseCase

	newID func() string
	now   func() time.Time
}

// New creates a new task UseCase implementation.
func New(l pkgLog.Logger, repo repository.TaskRepository, executor *sync.Executor, stores *store.Registry, users user.UseCase) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		executor: executor,
		stores:   stores,
		users:    users,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}
