// Package analytics derives sorted, grouped and bucketed views from a
// task collection. Everything in this file is pure: inputs are never
// mutated, outputs are fresh slices.
package analytics

import (
	"sort"
	"time"

	"timeplanner/internal/model"
)

// Unit is the granularity of a chart bucket.
type Unit string

const (
	UnitHour Unit = "hour"
	UnitDay  Unit = "day"
)

// Point is one chart datum: a formatted period label and the number of
// tasks starting in that bucket.
type Point struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SortBy returns a stably sorted copy of tasks. Date orders by start
// instant, tag by color-label length (a crude tag ordering kept for
// parity with the task list), invitations by invitee count.
func SortBy(tasks []model.Task, key model.SortKey) []model.Task {
	sorted := append([]model.Task(nil), tasks...)
	switch key {
	case model.SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		})
	case model.SortByTag:
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(sorted[i].Color.Label) < len(sorted[j].Color.Label)
		})
	case model.SortByInvitations:
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(sorted[i].Invitations) < len(sorted[j].Invitations)
		})
	}
	return sorted
}

// GroupByColor partitions tasks by color label, keeping encounter
// order within each group.
func GroupByColor(tasks []model.Task) map[string][]model.Task {
	groups := make(map[string][]model.Task)
	for _, t := range tasks {
		groups[t.Color.Label] = append(groups[t.Color.Label], t)
	}
	return groups
}

// BucketForChart produces one point per period entry, counting tasks
// whose start falls in the same unit bucket as that entry. Tasks
// outside every bucket are simply absent; empty buckets count zero.
func BucketForChart(tasks []model.Task, period []time.Time, unit Unit, labelFormat string) []Point {
	points := make([]Point, len(period))
	for i, slot := range period {
		count := 0
		for _, t := range tasks {
			if sameBucket(t.StartDate, slot, unit) {
				count++
			}
		}
		points[i] = Point{Label: slot.Format(labelFormat), Count: count}
	}
	return points
}

// Upcoming returns up to limit tasks starting strictly after now,
// soonest first.
func Upcoming(tasks []model.Task, now time.Time, limit int) []model.Task {
	future := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.StartDate.After(now) {
			future = append(future, t)
		}
	}
	sort.SliceStable(future, func(i, j int) bool {
		return future[i].StartDate.Before(future[j].StartDate)
	})
	if len(future) > limit {
		future = future[:limit]
	}
	return future
}

func sameBucket(a, b time.Time, unit Unit) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by || am != bm || ad != bd {
		return false
	}
	if unit == UnitHour {
		return a.Hour() == b.Hour()
	}
	return true
}
