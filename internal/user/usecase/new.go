package usecase

import (
	"timeplanner/internal/store"
	"timeplanner/internal/user/repository"
	pkgLog "timeplanner/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	stores *store.Registry
}

// New creates a new user UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, stores *store.Registry) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		stores: stores,
	}
}
