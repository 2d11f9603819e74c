package usecase

import (
	"time"

	"timeplanner/internal/store"
	"timeplanner/internal/timegrid"
	pkgLog "timeplanner/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	stores *store.Registry
	grids  *timegrid.Cache
	now    func() time.Time
}

// New creates a new calendar UseCase implementation.
func New(l pkgLog.Logger, stores *store.Registry, grids *timegrid.Cache) *implUseCase {
	return &implUseCase{
		l:      l,
		stores: stores,
		grids:  grids,
		now:    time.Now,
	}
}
