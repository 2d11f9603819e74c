package http

import (
	"timeplanner/internal/calendar"
	pkgErrors "timeplanner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case calendar.ErrUnknownFormat:
		return pkgErrors.NewHTTPError(400, "unknown calendar format")
	case calendar.ErrUnknownAction:
		return pkgErrors.NewHTTPError(400, "unknown navigation action")
	case calendar.ErrUnknownFilter:
		return pkgErrors.NewHTTPError(400, "unknown filter key")
	case calendar.ErrUnknownColor:
		return pkgErrors.NewHTTPError(400, "unknown color label")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
