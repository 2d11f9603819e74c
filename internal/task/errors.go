package task

import "errors"

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrDatesRequired  = errors.New("start and end dates are required")
	ErrEndBeforeStart = errors.New("end date is before start date")
	ErrUnknownColor   = errors.New("unknown color label")
	ErrNotOwner       = errors.New("received tasks can only be declined")
	ErrNotFound       = errors.New("task not found")
)
