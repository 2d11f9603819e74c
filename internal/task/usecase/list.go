package usecase

import (
	"context"

	"timeplanner/internal/analytics"
	"timeplanner/internal/model"
	"timeplanner/internal/task"
)

// List returns the caller's tasks from their store, hydrating it on
// first access. When the cursor carries a filter key, the list comes
// back ordered by it.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List store: %v", err)
		return task.ListOutput{}, err
	}

	tasks := s.Tasks()
	if filter := s.Cursor().Filter; filter.Valid() {
		tasks = analytics.SortBy(tasks, filter)
	}
	return task.ListOutput{Tasks: tasks}, nil
}
