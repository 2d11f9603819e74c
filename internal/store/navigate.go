package store

import (
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/timegrid"
)

// Action is a cursor navigation command.
type Action string

const (
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionToday Action = "today"
)

// Valid reports whether the action is one of prev, next, today.
func (a Action) Valid() bool {
	switch a {
	case ActionPrev, ActionNext, ActionToday:
		return true
	}
	return false
}

// Navigate moves the cursor by one period of the current format. The
// step depends on the format: one day in day view, seven days applied
// to every week slot in week view, one month snapped to the month
// start in month view. Today re-anchors both day and week at now.
func (s *Store) Navigate(action Action, now time.Time) {
	if action == ActionToday {
		s.SetSelectedDay(func(time.Time) time.Time { return now })
		s.SetSelectedWeek(func([]time.Time) []time.Time { return timegrid.Week(now) })
		return
	}

	step := 1
	if action == ActionPrev {
		step = -1
	}

	switch s.Cursor().Format {
	case model.FormatDay:
		s.SetSelectedDay(func(day time.Time) time.Time {
			return day.AddDate(0, 0, step)
		})
	case model.FormatWeek:
		s.SetSelectedWeek(func(week []time.Time) []time.Time {
			shifted := make([]time.Time, len(week))
			for i, d := range week {
				shifted[i] = d.AddDate(0, 0, 7*step)
			}
			return shifted
		})
	case model.FormatMonth:
		s.SetSelectedDay(func(day time.Time) time.Time {
			return timegrid.StartOfMonth(day).AddDate(0, step, 0)
		})
	}
}
