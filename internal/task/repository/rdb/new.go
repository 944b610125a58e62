package rdb

import (
	"fmt"

	"gorm.io/gorm"

	"productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a new gorm-backed Repository for the task domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/rdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/rdb.%s", method)
}
