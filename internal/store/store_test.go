package store_test

import (
	"context"
	"testing"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/store"
	"timeplanner/internal/task/repository"
	"timeplanner/internal/task/repository/memory"
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

var wednesday = time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)

func task(id string) model.Task {
	return model.Task{
		ID:        id,
		Title:     "task " + id,
		Color:     model.DefaultColor,
		StartDate: wednesday,
		EndDate:   wednesday.Add(time.Hour),
	}
}

func TestNewAnchorsWeekAtNow(t *testing.T) {
	s := store.New(wednesday)
	c := s.Cursor()

	if !c.SelectedDay.Equal(wednesday) {
		t.Errorf("selected day: got %v", c.SelectedDay)
	}
	if len(c.SelectedWeek) != 7 {
		t.Fatalf("selected week must hold 7 days, got %d", len(c.SelectedWeek))
	}
	if c.SelectedWeek[0].Weekday() != time.Sunday {
		t.Errorf("week must start on sunday, got %v", c.SelectedWeek[0].Weekday())
	}
	if c.Format != model.FormatWeek {
		t.Errorf("default format must be week, got %q", c.Format)
	}
}

func TestUpsertReplacesById(t *testing.T) {
	s := store.New(wednesday)
	s.Upsert(task("a"))
	s.Upsert(task("b"))

	edited := task("a")
	edited.Title = "renamed"
	s.Upsert(edited)

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("upsert of an existing id must not grow the collection, got %d", len(tasks))
	}
	for _, tk := range tasks {
		if tk.ID == "a" && tk.Title != "renamed" {
			t.Errorf("existing task must be replaced, got %q", tk.Title)
		}
	}
}

func TestRemove(t *testing.T) {
	s := store.New(wednesday)
	s.Upsert(task("a"))
	s.Upsert(task("b"))
	s.Remove("a")

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "b" {
		t.Errorf("got %+v", tasks)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := store.New(wednesday)
	s.Upsert(task("a"))

	got := s.Tasks()
	got[0].Title = "mutated"

	if s.Tasks()[0].Title == "mutated" {
		t.Errorf("Tasks must not expose internal state")
	}
}

func TestNavigateDay(t *testing.T) {
	s := store.New(wednesday)
	s.SetFormat(model.FormatDay)

	s.Navigate(store.ActionNext, wednesday)
	if got := s.Cursor().SelectedDay; got.Day() != 16 {
		t.Errorf("next day: got %v", got)
	}
	s.Navigate(store.ActionPrev, wednesday)
	s.Navigate(store.ActionPrev, wednesday)
	if got := s.Cursor().SelectedDay; got.Day() != 14 {
		t.Errorf("prev day: got %v", got)
	}
}

func TestNavigateWeekShiftsAllSlots(t *testing.T) {
	s := store.New(wednesday)

	before := s.Cursor().SelectedWeek
	s.Navigate(store.ActionNext, wednesday)
	after := s.Cursor().SelectedWeek

	for i := range after {
		if want := before[i].AddDate(0, 0, 7); !after[i].Equal(want) {
			t.Errorf("slot %d: got %v, want %v", i, after[i], want)
		}
	}
}

func TestNavigateMonthSnapsToMonthStart(t *testing.T) {
	s := store.New(time.Date(2023, time.March, 31, 12, 0, 0, 0, time.UTC))
	s.SetFormat(model.FormatMonth)

	s.Navigate(store.ActionPrev, wednesday)
	got := s.Cursor().SelectedDay
	if got.Year() != 2023 || got.Month() != time.February || got.Day() != 1 {
		t.Errorf("prev month from mar 31 must land on feb 1, got %v", got)
	}

	s.Navigate(store.ActionNext, wednesday)
	got = s.Cursor().SelectedDay
	if got.Month() != time.March || got.Day() != 1 {
		t.Errorf("next month must land on mar 1, got %v", got)
	}
}

func TestNavigateToday(t *testing.T) {
	s := store.New(wednesday)
	s.SetFormat(model.FormatDay)
	s.Navigate(store.ActionNext, wednesday)
	s.Navigate(store.ActionNext, wednesday)

	now := wednesday.Add(48 * time.Hour)
	s.Navigate(store.ActionToday, now)

	c := s.Cursor()
	if !c.SelectedDay.Equal(now) {
		t.Errorf("today must re-anchor the day at now, got %v", c.SelectedDay)
	}
	if c.SelectedWeek[0].Weekday() != time.Sunday {
		t.Errorf("today must rebuild the week, got %v", c.SelectedWeek[0])
	}
}

func TestSubscribeCoalesces(t *testing.T) {
	s := store.New(wednesday)
	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	s.Upsert(task("a"))
	s.Upsert(task("b"))
	s.Remove("a")

	select {
	case <-ch:
	default:
		t.Fatalf("expected a pending signal after mutations")
	}
	select {
	case <-ch:
		t.Fatalf("signals must coalesce, got a second one")
	default:
	}
}

func TestRegistryHydratesOnce(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	seed := repository.EncodeTask(task("a"))
	if err := repo.Put(ctx, "u-1", seed.ID, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	reg := store.NewRegistry(noopLogger{}, repo)
	s, err := reg.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected hydrated task, got %d", len(s.Tasks()))
	}

	again, err := reg.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again != s {
		t.Errorf("same user must get the same store")
	}
}

func TestRegistryEvict(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	reg := store.NewRegistry(noopLogger{}, repo)

	s, err := reg.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	s.Upsert(task("a"))

	reg.Evict("u-1")
	if len(s.Tasks()) != 0 {
		t.Errorf("evict must clear the old store")
	}

	fresh, err := reg.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get after evict: %v", err)
	}
	if fresh == s {
		t.Errorf("evicted user must get a new store")
	}
}

func TestRegistrySkipsUndecodableRecords(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	good := repository.EncodeTask(task("good"))
	bad := repository.TaskRecord{ID: "bad", Title: "broken", StartDate: "not a date", EndDate: "not a date"}
	if err := repo.Put(ctx, "u-1", good.ID, good); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.Put(ctx, "u-1", bad.ID, bad); err != nil {
		t.Fatalf("seed: %v", err)
	}

	reg := store.NewRegistry(noopLogger{}, repo)
	s, err := reg.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "good" {
		t.Errorf("corrupt record must be skipped, got %+v", tasks)
	}
}
