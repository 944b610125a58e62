package http

import (
	"errors"
	"net/http"

	"productivity-tracker/internal/admin"
	pkgErrors "productivity-tracker/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, admin.ErrSeedFailed) {
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate sample data")
	}
	return err
}
