package usecase

import (
	"context"
	"time"

	"timeplanner/internal/analytics"
	"timeplanner/internal/model"
	"timeplanner/internal/store"
	"timeplanner/internal/timegrid"
)

// period selects the bucket sequence, granularity and label layout for
// the cursor's current view: hours of the day, days of the week, or
// days of the month.
func period(c store.Cursor) ([]time.Time, analytics.Unit, string) {
	switch c.Format {
	case model.FormatDay:
		return timegrid.DayMatrix(c.SelectedDay), analytics.UnitHour, "15"
	case model.FormatMonth:
		return timegrid.MonthMatrix(c.SelectedDay, false), analytics.UnitDay, "2"
	default:
		return c.SelectedWeek, analytics.UnitDay, "02.01"
	}
}

func (uc *implUseCase) Line(ctx context.Context, sc model.Scope, colorLabel string) (analytics.LineOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Line store: %v", err)
		return analytics.LineOutput{}, err
	}
	cursor := s.Cursor()

	label := colorLabel
	if label == "" && cursor.SelectedColor != nil {
		label = cursor.SelectedColor.Label
	}

	tasks := s.Tasks()
	if label != "" {
		if _, ok := model.ColorByLabel(label); !ok {
			return analytics.LineOutput{}, analytics.ErrUnknownColor
		}
		tasks = analytics.GroupByColor(tasks)[label]
	}

	slots, unit, layout := period(cursor)
	return analytics.LineOutput{Points: analytics.BucketForChart(tasks, slots, unit, layout)}, nil
}

func (uc *implUseCase) Pie(ctx context.Context, sc model.Scope) (analytics.PieOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Pie store: %v", err)
		return analytics.PieOutput{}, err
	}

	groups := analytics.GroupByColor(s.Tasks())
	slices := make([]analytics.Slice, 0, len(groups))
	for _, c := range model.Palette {
		if n := len(groups[c.Label]); n > 0 {
			slices = append(slices, analytics.Slice{Label: c.Label, Code: c.Code, Count: n})
		}
	}
	return analytics.PieOutput{Slices: slices}, nil
}

func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope) (analytics.UpcomingOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upcoming store: %v", err)
		return analytics.UpcomingOutput{}, err
	}
	return analytics.UpcomingOutput{Tasks: analytics.Upcoming(s.Tasks(), uc.now(), upcomingLimit)}, nil
}

func (uc *implUseCase) TimeRange(ctx context.Context, sc model.Scope) (analytics.TimeRangeOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TimeRange store: %v", err)
		return analytics.TimeRangeOutput{}, err
	}
	cursor := s.Cursor()

	slots, _, _ := period(cursor)
	if cursor.Format == model.FormatDay {
		slots = []time.Time{timegrid.StartOfDay(cursor.SelectedDay)}
	}
	return analytics.TimeRangeOutput{Points: analytics.BucketForChart(s.Tasks(), slots, analytics.UnitDay, "02.01")}, nil
}
