package http

import (
	"timeplanner/internal/calendar"
	pkgLog "timeplanner/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l pkgLog.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
