package usecase

import (
	"context"

	"timeplanner/internal/model"
)

// Resolve maps an invitation reference to the referenced user's scope.
func (uc *implUseCase) Resolve(ctx context.Context, u model.User) (model.Scope, bool, error) {
	rec, found, err := uc.repo.GetByName(ctx, u.Name, u.Surname)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resolve GetByName: %v", err)
		return model.Scope{}, false, err
	}
	if !found {
		return model.Scope{}, false, nil
	}
	return rec.Decode().Scope(), true, nil
}
