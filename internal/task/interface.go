package task

import (
	"context"

	"timeplanner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create validates and persists a new task, fanning copies out to
	// every resolvable invitee.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// Edit overwrites an owned task and reconciles every invitee copy.
	// Received copies are read-only and cannot be edited.
	Edit(ctx context.Context, sc model.Scope, input EditInput) (EditOutput, error)
	// Delete removes a task. An owner's delete cascades to every
	// invitee copy; an invitee's delete declines the invitation and
	// leaves everyone else's copies in place.
	Delete(ctx context.Context, sc model.Scope, taskID string) error
	// List returns the caller's tasks, ordered by the cursor's filter
	// key when one is set.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
}
