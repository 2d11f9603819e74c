package usecase

import (
	"context"

	"timeplanner/internal/model"
)

// SignOut evicts the user's in-memory task state. The stored
// collection is untouched and rehydrates on the next request.
func (uc *implUseCase) SignOut(ctx context.Context, sc model.Scope) error {
	uc.stores.Evict(sc.UserID)
	uc.l.Infof(ctx, "user %s signed out", sc.UserID)
	return nil
}
