package http

import (
	"errors"
	"net/http"

	"productivity-tracker/internal/summary"
	pkgErrors "productivity-tracker/pkg/errors"
)

const msgGenerationFailed = "Unable to generate AI summary. Please try again later."

// mapError translates summary use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, summary.ErrSummaryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Summary not found")
	case errors.Is(err, summary.ErrEmptyTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No tasks provided")
	case errors.Is(err, summary.ErrInvalidWeek):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, summary.ErrGenerationFailed),
		errors.Is(err, summary.ErrGeneratorDisabled):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, msgGenerationFailed)
	default:
		return err
	}
}
