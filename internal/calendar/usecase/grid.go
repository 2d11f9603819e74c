package usecase

import (
	"context"

	"timeplanner/internal/calendar"
	"timeplanner/internal/model"
	"timeplanner/internal/timegrid"
)

// Grid builds the matrix for the cursor's current view. Month grids
// are weekday-aligned: padded with the surrounding months' days to
// whole Sunday-through-Saturday rows.
func (uc *implUseCase) Grid(ctx context.Context, sc model.Scope) (calendar.GridOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Grid store: %v", err)
		return calendar.GridOutput{}, err
	}
	cursor := s.Cursor()

	out := calendar.GridOutput{
		Format:     string(cursor.Format),
		HourLabels: timegrid.HourLabels(),
	}
	switch cursor.Format {
	case model.FormatDay:
		out.Hours = uc.grids.DayMatrix(cursor.SelectedDay)
	case model.FormatWeek:
		out.Week = uc.grids.WeekMatrix(cursor.SelectedWeek)
	case model.FormatMonth:
		out.Days = uc.grids.MonthMatrix(cursor.SelectedDay, true)
	}
	return out, nil
}
