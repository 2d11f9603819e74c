package usecase

import (
	"time"

	"timeplanner/internal/store"
	pkgLog "timeplanner/pkg/log"
)

// upcomingLimit caps the upcoming timeline, matching the dashboard.
const upcomingLimit = 4

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	stores *store.Registry
	now    func() time.Time
}

// New creates a new analytics UseCase implementation.
func New(l pkgLog.Logger, stores *store.Registry) *implUseCase {
	return &implUseCase{
		l:      l,
		stores: stores,
		now:    time.Now,
	}
}
