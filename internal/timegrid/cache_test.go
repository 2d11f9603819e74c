package timegrid_test

import (
	"testing"
	"time"

	"timeplanner/internal/timegrid"
)

func TestCacheReturnsSameMatrices(t *testing.T) {
	cache := timegrid.NewCache()
	anchor := date(2023, time.March, 15)

	day1 := cache.DayMatrix(anchor)
	day2 := cache.DayMatrix(anchor.Add(5 * time.Hour)) // same calendar day
	if len(day1) != 24 || len(day2) != 24 {
		t.Fatalf("unexpected matrix sizes %d/%d", len(day1), len(day2))
	}
	for i := range day1 {
		if !day1[i].Equal(day2[i]) {
			t.Fatalf("cached day matrix differs at %d", i)
		}
	}

	week := timegrid.Week(anchor)
	w1 := cache.WeekMatrix(week)
	w2 := cache.WeekMatrix(week)
	if &w1[0][0] != &w2[0][0] {
		t.Errorf("expected memoized week matrix to be reused")
	}

	aligned := cache.MonthMatrix(anchor, true)
	unaligned := cache.MonthMatrix(anchor, false)
	if len(aligned) == len(unaligned) {
		t.Errorf("alignment flag must key separate cache entries")
	}
}

func TestCacheMatchesPureBuilders(t *testing.T) {
	cache := timegrid.NewCache()
	anchor := date(2024, time.February, 10)

	got := cache.MonthMatrix(anchor, true)
	want := timegrid.MonthMatrix(anchor, true)
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Errorf("entry %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
