package http

import (
	"timeplanner/internal/analytics"
	pkgErrors "timeplanner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case analytics.ErrUnknownColor:
		return pkgErrors.NewHTTPError(400, "unknown color label")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
