// Package feed exports a user's tasks as an iCalendar feed, so the
// planner can be subscribed to from any calendar client.
package feed

import (
	ics "github.com/arran4/golang-ical"

	"timeplanner/internal/model"
)

// ProdID identifies this feed's generator in the calendar header.
const ProdID = "-//timeplanner//calendar feed//EN"

// BuildCalendar renders tasks as a VCALENDAR. Title maps to SUMMARY,
// description to DESCRIPTION, the color label to CATEGORIES, and the
// sender of a received task to ORGANIZER.
func BuildCalendar(name string, tasks []model.Task) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProdID)
	cal.SetName(name)

	for _, t := range tasks {
		event := cal.AddEvent(t.ID)
		event.SetSummary(t.Title)
		event.SetStartAt(t.StartDate)
		event.SetEndAt(t.EndDate)
		if t.Description != "" {
			event.SetDescription(t.Description)
		}
		if t.Color.Label != "" {
			event.SetProperty(ics.ComponentPropertyCategories, t.Color.Label)
		}
		if t.Received() {
			event.SetOrganizer(t.From)
		}
	}
	return cal
}
