package http

import (
	"productivity-tracker/internal/admin"
	"productivity-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc admin.UseCase
}

// New creates a new HTTP handler for admin operations.
func New(l log.Logger, uc admin.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
