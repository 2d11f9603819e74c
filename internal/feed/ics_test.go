package feed_test

import (
	"strings"
	"testing"
	"time"

	"timeplanner/internal/feed"
	"timeplanner/internal/model"
)

func TestBuildCalendar(t *testing.T) {
	start := time.Date(2023, time.March, 15, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			ID:          "task-1",
			Title:       "planning",
			Description: "quarterly planning",
			Color:       model.Palette[0],
			StartDate:   start,
			EndDate:     start.Add(time.Hour),
		},
		{
			ID:        "task-2",
			Title:     "review",
			Color:     model.Palette[4],
			StartDate: start.Add(24 * time.Hour),
			EndDate:   start.Add(25 * time.Hour),
			From:      "Alice Smith",
		},
	}

	serialized := feed.BuildCalendar("Bob Stone", tasks).Serialize()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:planning",
		"DESCRIPTION:quarterly planning",
		"CATEGORIES:tomato",
		"SUMMARY:review",
		"UID:task-2",
		"END:VCALENDAR",
	} {
		if !strings.Contains(serialized, want) {
			t.Errorf("feed must contain %q", want)
		}
	}
	if !strings.Contains(serialized, "ORGANIZER") {
		t.Errorf("received tasks must carry an organizer")
	}
}

func TestBuildCalendarEmpty(t *testing.T) {
	serialized := feed.BuildCalendar("Bob Stone", nil).Serialize()

	if !strings.Contains(serialized, "BEGIN:VCALENDAR") || strings.Contains(serialized, "BEGIN:VEVENT") {
		t.Errorf("empty collection must yield an event-free calendar:\n%s", serialized)
	}
}
