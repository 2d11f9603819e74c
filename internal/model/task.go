package model

import "time"

// Color is a palette entry used to tag tasks. The label doubles as the
// grouping key for analytics.
type Color struct {
	Label string
	Code  string
}

// Palette is the fixed set of colors a task can carry.
var Palette = []Color{
	{Label: "tomato", Code: "rgb(218, 0, 17)"},
	{Label: "flamingo", Code: "rgb(234, 123, 118)"},
	{Label: "tangerine", Code: "rgb(249, 78, 46)"},
	{Label: "banana", Code: "rgb(249, 190, 75)"},
	{Label: "sage", Code: "rgb(26, 182, 128)"},
	{Label: "basil", Code: "rgb(0, 128, 75)"},
	{Label: "peacock", Code: "rgb(0, 157, 223)"},
	{Label: "blueberry", Code: "rgb(62, 83, 173)"},
	{Label: "lavender", Code: "rgb(121, 135, 197)"},
	{Label: "grape", Code: "rgb(136, 38, 154)"},
	{Label: "graphite", Code: "rgb(96, 96, 96)"},
}

// DefaultColor is applied when a task is created without an explicit color.
var DefaultColor = Palette[7] // blueberry

// ColorByLabel looks up a palette entry by label.
func ColorByLabel(label string) (Color, bool) {
	for _, c := range Palette {
		if c.Label == label {
			return c, true
		}
	}
	return Color{}, false
}

// Task is the central entity. A shared task exists as one logical
// entity with N physical copies: one in the owner's collection (From
// empty) and one per invitee (From = owner's display name). All copies
// share the same ID; the owner's copy is authoritative for scheduling
// fields.
type Task struct {
	ID          string
	Title       string
	Description string
	Color       Color
	StartDate   time.Time
	EndDate     time.Time
	Invitations []User
	From        string
	Offset      *int // UI cursor hint, not part of task identity
}

// Received reports whether this copy was fanned out by another user.
// Received tasks are read-mostly: only the owner may edit scheduling
// fields, the recipient can only decline.
func (t Task) Received() bool {
	return t.From != ""
}

// Shared reports whether the task has any invitees.
func (t Task) Shared() bool {
	return len(t.Invitations) > 0
}

// Invited reports whether the given user appears in the invitation list.
func (t Task) Invited(u User) bool {
	for _, inv := range t.Invitations {
		if inv == u {
			return true
		}
	}
	return false
}
