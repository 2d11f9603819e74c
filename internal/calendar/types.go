package calendar

import (
	"time"

	"timeplanner/internal/store"
)

// --- UseCase Outputs ---

type CursorOutput struct {
	Cursor store.Cursor
}

// GridOutput carries the matrix for exactly one view format. Hours is
// set for day views, Week (rows = hours, columns = days) for week
// views, Days for month views.
type GridOutput struct {
	Format     string
	HourLabels []string
	Hours      []time.Time
	Week       [][]time.Time
	Days       []time.Time
}
