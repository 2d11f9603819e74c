package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeplanner/internal/calendar"
	"timeplanner/internal/calendar/usecase"
	"timeplanner/internal/model"
	"timeplanner/internal/store"
	"timeplanner/internal/task/repository/memory"
	"timeplanner/internal/timegrid"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

var sc = model.Scope{UserID: "u-1", Name: "Alice", Surname: "Smith", DisplayName: "Alice Smith"}

func newUseCase() calendar.UseCase {
	stores := store.NewRegistry(noopLogger{}, memory.New())
	return usecase.New(noopLogger{}, stores, timegrid.NewCache())
}

func TestGridPerFormat(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	// Default view is the week.
	out, err := uc.Grid(ctx, sc)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(out.Week) != 24 || len(out.Week[0]) != 7 {
		t.Errorf("week grid must be 24x7, got %dx%d", len(out.Week), len(out.Week[0]))
	}
	if len(out.HourLabels) != 24 || out.HourLabels[0] != "00:00" {
		t.Errorf("hour labels: got %v", out.HourLabels[:1])
	}

	if _, err := uc.SetFormat(ctx, sc, model.FormatDay); err != nil {
		t.Fatalf("set format: %v", err)
	}
	out, err = uc.Grid(ctx, sc)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(out.Hours) != 24 || out.Week != nil {
		t.Errorf("day grid must be 24 hour slots, got %+v", out)
	}

	if _, err := uc.SetFormat(ctx, sc, model.FormatMonth); err != nil {
		t.Fatalf("set format: %v", err)
	}
	out, err = uc.Grid(ctx, sc)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(out.Days)%7 != 0 {
		t.Errorf("aligned month grid must hold whole weeks, got %d days", len(out.Days))
	}
	if out.Days[0].Weekday() != time.Sunday {
		t.Errorf("aligned month grid must start on sunday, got %v", out.Days[0].Weekday())
	}
}

func TestSetFormatUnknown(t *testing.T) {
	uc := newUseCase()

	if _, err := uc.SetFormat(context.Background(), sc, "year"); !errors.Is(err, calendar.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestNavigateUnknownAction(t *testing.T) {
	uc := newUseCase()

	if _, err := uc.Navigate(context.Background(), sc, "sideways"); !errors.Is(err, calendar.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestNavigateMovesCursor(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	before, err := uc.Cursor(ctx, sc)
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}

	after, err := uc.Navigate(ctx, sc, store.ActionNext)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	want := before.Cursor.SelectedWeek[0].AddDate(0, 0, 7)
	if !after.Cursor.SelectedWeek[0].Equal(want) {
		t.Errorf("next week: got %v, want %v", after.Cursor.SelectedWeek[0], want)
	}
}

func TestSetFilterAndColor(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	out, err := uc.SetFilter(ctx, sc, model.SortByTag)
	if err != nil {
		t.Fatalf("set filter: %v", err)
	}
	if out.Cursor.Filter != model.SortByTag {
		t.Errorf("got %q", out.Cursor.Filter)
	}
	if _, err := uc.SetFilter(ctx, sc, "alphabet"); !errors.Is(err, calendar.ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}

	out, err = uc.SetColor(ctx, sc, "sage")
	if err != nil {
		t.Fatalf("set color: %v", err)
	}
	if out.Cursor.SelectedColor == nil || out.Cursor.SelectedColor.Label != "sage" {
		t.Errorf("got %+v", out.Cursor.SelectedColor)
	}
	out, err = uc.SetColor(ctx, sc, "")
	if err != nil {
		t.Fatalf("clear color: %v", err)
	}
	if out.Cursor.SelectedColor != nil {
		t.Errorf("empty label must clear the selection")
	}
	if _, err := uc.SetColor(ctx, sc, "mauve"); !errors.Is(err, calendar.ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
}
