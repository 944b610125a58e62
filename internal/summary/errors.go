package summary

import "errors"

// Domain-specific errors for the summary package.
var (
	ErrSummaryNotFound   = errors.New("weekly summary not found")
	ErrEmptyTasks        = errors.New("no tasks provided for summary generation")
	ErrInvalidWeek       = errors.New("week dates must be ISO dates (YYYY-MM-DD)")
	ErrGenerationFailed  = errors.New("unable to generate AI summary")
	ErrGeneratorDisabled = errors.New("AI summary generation is not configured")
)
