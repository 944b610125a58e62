package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidName       = errors.New("task name must be 1-200 characters")
	ErrInvalidTimeSpent  = errors.New("time spent must be between 0 and 24 hours")
	ErrInvalidFocusLevel = errors.New("focus level must be low, medium or high")
	ErrInvalidDate       = errors.New("date must be an ISO date (YYYY-MM-DD)")
	ErrEmptyTasks        = errors.New("no tasks provided")
)
