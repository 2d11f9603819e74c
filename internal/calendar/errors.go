package calendar

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown calendar format")
	ErrUnknownAction = errors.New("unknown navigation action")
	ErrUnknownFilter = errors.New("unknown filter key")
	ErrUnknownColor  = errors.New("unknown color label")
)
