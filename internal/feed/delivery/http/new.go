package http

import (
	"timeplanner/internal/task"
	pkgLog "timeplanner/pkg/log"
)

type handler struct {
	l     pkgLog.Logger
	tasks task.UseCase
}

// New creates a new HTTP handler for the calendar feed.
func New(l pkgLog.Logger, tasks task.UseCase) *handler {
	return &handler{
		l:     l,
		tasks: tasks,
	}
}
