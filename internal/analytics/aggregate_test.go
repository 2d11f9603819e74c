package analytics_test

import (
	"testing"
	"time"

	"timeplanner/internal/analytics"
	"timeplanner/internal/model"
	"timeplanner/internal/timegrid"
)

var noon = time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC)

func taskAt(id string, start time.Time, color model.Color) model.Task {
	return model.Task{
		ID:        id,
		Title:     "task " + id,
		Color:     color,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}
}

func TestSortByDateIsStable(t *testing.T) {
	tasks := []model.Task{
		taskAt("b", noon, model.Palette[0]),
		taskAt("a", noon.Add(-time.Hour), model.Palette[1]),
		taskAt("c", noon, model.Palette[2]),
		taskAt("d", noon, model.Palette[3]),
	}

	sorted := analytics.SortBy(tasks, model.SortByDate)

	if sorted[0].ID != "a" {
		t.Errorf("earliest start must come first, got %q", sorted[0].ID)
	}
	// b, c, d share an identical start: original relative order survives.
	for i, want := range []string{"b", "c", "d"} {
		if sorted[i+1].ID != want {
			t.Errorf("position %d: got %q, want %q", i+1, sorted[i+1].ID, want)
		}
	}
}

func TestSortByNeverMutatesSource(t *testing.T) {
	tasks := []model.Task{
		taskAt("b", noon, model.Palette[0]),
		taskAt("a", noon.Add(-time.Hour), model.Palette[0]),
	}

	analytics.SortBy(tasks, model.SortByDate)

	if tasks[0].ID != "b" || tasks[1].ID != "a" {
		t.Errorf("source order must be preserved, got %q %q", tasks[0].ID, tasks[1].ID)
	}
}

func TestSortByTagOrdersByLabelLength(t *testing.T) {
	tasks := []model.Task{
		taskAt("long", noon, model.Color{Label: "tangerine"}),
		taskAt("short", noon, model.Color{Label: "sage"}),
	}

	sorted := analytics.SortBy(tasks, model.SortByTag)
	if sorted[0].ID != "short" {
		t.Errorf("shorter label first, got %q", sorted[0].ID)
	}
}

func TestSortByInvitationsAscending(t *testing.T) {
	crowded := taskAt("crowded", noon, model.Palette[0])
	crowded.Invitations = []model.User{{Name: "Bob"}, {Name: "Cara"}}
	solo := taskAt("solo", noon, model.Palette[0])

	sorted := analytics.SortBy([]model.Task{crowded, solo}, model.SortByInvitations)
	if sorted[0].ID != "solo" {
		t.Errorf("fewest invitations first, got %q", sorted[0].ID)
	}
}

func TestGroupByColorKeepsEncounterOrder(t *testing.T) {
	tasks := []model.Task{
		taskAt("1", noon, model.Palette[0]),
		taskAt("2", noon, model.Palette[1]),
		taskAt("3", noon, model.Palette[0]),
	}

	groups := analytics.GroupByColor(tasks)

	tomato := groups["tomato"]
	if len(tomato) != 2 || tomato[0].ID != "1" || tomato[1].ID != "3" {
		t.Errorf("got %+v", tomato)
	}
	if len(groups["flamingo"]) != 1 {
		t.Errorf("got %+v", groups["flamingo"])
	}
}

func TestBucketForChartDayPeriodIsComplete(t *testing.T) {
	period := timegrid.DayMatrix(noon)

	points := analytics.BucketForChart(nil, period, analytics.UnitHour, "15")

	if len(points) != 24 {
		t.Fatalf("a day period must yield 24 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Count != 0 {
			t.Errorf("empty collection must bucket to zero, got %+v", p)
		}
	}
	if points[0].Label != "00" || points[23].Label != "23" {
		t.Errorf("labels must follow the layout, got %q..%q", points[0].Label, points[23].Label)
	}
}

func TestBucketForChartCountsMatchingStarts(t *testing.T) {
	period := timegrid.DayMatrix(noon)
	tasks := []model.Task{
		taskAt("a", noon.Add(10*time.Minute), model.Palette[0]),
		taskAt("b", noon.Add(45*time.Minute), model.Palette[1]),
		taskAt("c", noon.Add(26*time.Hour), model.Palette[2]), // next day, outside every bucket
	}

	points := analytics.BucketForChart(tasks, period, analytics.UnitHour, "15")

	if points[12].Count != 2 {
		t.Errorf("both noon starts share the 12:00 bucket, got %d", points[12].Count)
	}
	total := 0
	for _, p := range points {
		total += p.Count
	}
	if total != 2 {
		t.Errorf("out-of-period tasks must be absent, total %d", total)
	}
}

func TestBucketForChartDayUnit(t *testing.T) {
	week := timegrid.Week(noon)
	tasks := []model.Task{
		taskAt("a", noon, model.Palette[0]),
		taskAt("b", noon.Add(3*time.Hour), model.Palette[1]),
	}

	points := analytics.BucketForChart(tasks, week, analytics.UnitDay, "02.01")

	if len(points) != 7 {
		t.Fatalf("got %d points", len(points))
	}
	// March 15 2023 is a Wednesday, slot 3 of a Sunday-first week.
	if points[3].Count != 2 {
		t.Errorf("same-day starts share the bucket, got %+v", points)
	}
	if points[3].Label != "15.03" {
		t.Errorf("day label: got %q", points[3].Label)
	}
}

func TestUpcoming(t *testing.T) {
	tasks := []model.Task{
		taskAt("past", noon.Add(-time.Hour), model.Palette[0]),
		taskAt("now", noon, model.Palette[0]),
		taskAt("soon", noon.Add(time.Hour), model.Palette[0]),
		taskAt("later", noon.Add(2*time.Hour), model.Palette[0]),
		taskAt("latest", noon.Add(3*time.Hour), model.Palette[0]),
	}

	got := analytics.Upcoming(tasks, noon, 2)

	if len(got) != 2 {
		t.Fatalf("limit must truncate, got %d", len(got))
	}
	if got[0].ID != "soon" || got[1].ID != "later" {
		t.Errorf("want soonest-first strictly after now, got %q %q", got[0].ID, got[1].ID)
	}
}
