package http

import (
	"timeplanner/internal/task"
	pkgErrors "timeplanner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "title is required")
	case task.ErrDatesRequired:
		return pkgErrors.NewHTTPError(400, "start and end dates are required")
	case task.ErrEndBeforeStart:
		return pkgErrors.NewHTTPError(400, "end date is before start date")
	case task.ErrUnknownColor:
		return pkgErrors.NewHTTPError(400, "unknown color label")
	case task.ErrNotOwner:
		return pkgErrors.NewHTTPError(403, "received tasks can only be declined")
	case task.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
