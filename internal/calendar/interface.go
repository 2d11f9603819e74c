package calendar

import (
	"context"

	"timeplanner/internal/model"
	"timeplanner/internal/store"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Cursor returns the caller's current calendar cursor.
	Cursor(ctx context.Context, sc model.Scope) (CursorOutput, error)
	// Grid builds the time matrix for the cursor's current view.
	Grid(ctx context.Context, sc model.Scope) (GridOutput, error)
	// SetFormat switches the view granularity.
	SetFormat(ctx context.Context, sc model.Scope, f model.Format) (CursorOutput, error)
	// Navigate moves the cursor one period back or forward, or to today.
	Navigate(ctx context.Context, sc model.Scope, action store.Action) (CursorOutput, error)
	// SetFilter sets the task list ordering key; empty clears it.
	SetFilter(ctx context.Context, sc model.Scope, k model.SortKey) (CursorOutput, error)
	// SetColor sets the analytics color selection; empty clears it.
	SetColor(ctx context.Context, sc model.Scope, label string) (CursorOutput, error)
}
