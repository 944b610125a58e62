package analytics

import "errors"

var (
	ErrInvalidDate  = errors.New("dates must be ISO dates (YYYY-MM-DD)")
	ErrInvalidRange = errors.New("end_date must not be before start_date")
)
