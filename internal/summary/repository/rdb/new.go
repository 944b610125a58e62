package rdb

import (
	"fmt"

	"gorm.io/gorm"

	"productivity-tracker/internal/summary/repository"
	"productivity-tracker/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a new gorm-backed Repository for the summary domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("summary/repository/rdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("summary/repository/rdb.%s", method)
}
