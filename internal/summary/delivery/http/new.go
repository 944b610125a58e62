package http

import (
	"productivity-tracker/internal/summary"
	"productivity-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc summary.UseCase
}

// New creates a new HTTP handler for the weekly summary domain.
func New(l log.Logger, uc summary.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
