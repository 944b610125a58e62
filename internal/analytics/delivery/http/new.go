package http

import (
	"productivity-tracker/internal/analytics"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  analytics.UseCase
	cal *datemath.Calendar
}

// New creates a new HTTP handler for the analytics domain. Dates in responses
// are rendered in cal's timezone.
func New(l log.Logger, uc analytics.UseCase, cal *datemath.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}
