package http

import (
	"timeplanner/internal/user"
	pkgErrors "timeplanner/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrNameRequired:
		return pkgErrors.NewHTTPError(400, "name is required")
	case user.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
