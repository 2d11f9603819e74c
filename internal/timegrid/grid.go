// Package timegrid builds the day/week/month matrices behind the
// calendar views. All builders are pure functions of their inputs, so
// results can be memoized keyed by the anchor (see cache.go).
//
// Weeks are Sunday-first throughout.
package timegrid

import (
	"fmt"
	"time"
)

// HoursPerDay is the number of rows in day and week grids.
const HoursPerDay = 24

// DaysPerWeek is the number of columns in week grids.
const DaysPerWeek = 7

// HourLabels returns the fixed sequence of 24 hour-of-day labels,
// "00:00" through "23:00".
func HourLabels() []string {
	labels := make([]string, HoursPerDay)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:00", i)
	}
	return labels
}

// DayMatrix returns 24 instants, one per hour of day's calendar day,
// each truncated to that hour.
func DayMatrix(day time.Time) []time.Time {
	sod := StartOfDay(day)
	matrix := make([]time.Time, HoursPerDay)
	for i := range matrix {
		matrix[i] = sod.Add(time.Duration(i) * time.Hour)
	}
	return matrix
}

// WeekMatrix returns a 24x7 matrix over the given 7-day sequence:
// row = hour index, column = day index, cell = week[d] advanced by h hours.
func WeekMatrix(week []time.Time) [][]time.Time {
	matrix := make([][]time.Time, HoursPerDay)
	for h := range matrix {
		row := make([]time.Time, DaysPerWeek)
		for d := range row {
			row[d] = week[d].Add(time.Duration(h) * time.Hour)
		}
		matrix[h] = row
	}
	return matrix
}

// MonthMatrix returns the calendar days of day's month. When aligned,
// the result is padded to whole 7-day rows: leading entries are the
// tail of the previous month (one per weekday before the 1st) and
// trailing entries the head of the next month, so the grid always
// starts on Sunday and ends on Saturday.
func MonthMatrix(day time.Time, aligned bool) []time.Time {
	first := StartOfMonth(day)
	days := DaysInMonth(day)

	if !aligned {
		matrix := make([]time.Time, days)
		for i := range matrix {
			matrix[i] = first.AddDate(0, 0, i)
		}
		return matrix
	}

	lead := int(first.Weekday())
	last := first.AddDate(0, 0, days-1)
	trail := 6 - int(last.Weekday())

	matrix := make([]time.Time, lead+days+trail)
	for i := range matrix {
		matrix[i] = first.AddDate(0, 0, i-lead)
	}
	return matrix
}

// Week returns the 7-day Sunday-first sequence containing day.
func Week(day time.Time) []time.Time {
	sod := StartOfDay(day)
	sunday := sod.AddDate(0, 0, -int(sod.Weekday()))
	week := make([]time.Time, DaysPerWeek)
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth truncates t to the first of its month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of calendar days in t's month.
// Day zero of the next month normalizes to this month's last day.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
