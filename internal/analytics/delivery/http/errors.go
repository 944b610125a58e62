package http

import (
	"errors"
	"net/http"

	"productivity-tracker/internal/analytics"
	pkgErrors "productivity-tracker/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrInvalidDate),
		errors.Is(err, analytics.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
