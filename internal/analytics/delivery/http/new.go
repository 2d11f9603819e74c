package http

import (
	"timeplanner/internal/analytics"
	pkgLog "timeplanner/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l pkgLog.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
