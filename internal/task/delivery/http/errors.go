package http

import (
	"errors"
	"net/http"

	"productivity-tracker/internal/task"
	pkgErrors "productivity-tracker/pkg/errors"
)

// mapError translates task use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is passed through and reported as a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrInvalidName),
		errors.Is(err, task.ErrInvalidTimeSpent),
		errors.Is(err, task.ErrInvalidFocusLevel),
		errors.Is(err, task.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrEmptyTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No tasks provided")
	default:
		return err
	}
}
