package model

// Format is the calendar view granularity.
type Format string

const (
	FormatDay   Format = "day"
	FormatWeek  Format = "week"
	FormatMonth Format = "month"
)

// Valid reports whether f is a known granularity.
func (f Format) Valid() bool {
	switch f {
	case FormatDay, FormatWeek, FormatMonth:
		return true
	}
	return false
}

// SortKey selects the ordering of a task list.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByTag         SortKey = "tag"
	SortByInvitations SortKey = "invitations"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByDate, SortByTag, SortByInvitations:
		return true
	}
	return false
}
