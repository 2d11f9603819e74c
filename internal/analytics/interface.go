package analytics

import (
	"context"

	"timeplanner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Line builds the start-count line series over the cursor's current
	// period, optionally restricted to one color label.
	Line(ctx context.Context, sc model.Scope, colorLabel string) (LineOutput, error)
	// Pie counts the caller's tasks per palette color.
	Pie(ctx context.Context, sc model.Scope) (PieOutput, error)
	// Upcoming returns the next few tasks starting after now.
	Upcoming(ctx context.Context, sc model.Scope) (UpcomingOutput, error)
	// TimeRange returns per-day totals over the cursor's period.
	TimeRange(ctx context.Context, sc model.Scope) (TimeRangeOutput, error)
}
