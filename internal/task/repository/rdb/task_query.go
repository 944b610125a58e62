package rdb

import (
	"gorm.io/gorm"

	repo "productivity-tracker/internal/task/repository"
)

const defaultOrder = "date_worked DESC, id DESC"

func getOneScope(opt repo.GetOneTaskOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opt.ID != 0 {
			db = db.Where("id = ?", opt.ID)
		}
		return db
	}
}

// dateRangeScope applies the half-open [StartDate, EndDate) filter.
// ISO dates compare correctly as strings.
func dateRangeScope(opt repo.ListTasksOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opt.StartDate != "" {
			db = db.Where("date_worked >= ?", opt.StartDate)
		}
		if opt.EndDate != "" {
			db = db.Where("date_worked < ?", opt.EndDate)
		}
		return db
	}
}

func orderScope(opt repo.ListTasksOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		orderBy := opt.OrderBy
		if orderBy == "" {
			orderBy = defaultOrder
		}
		return db.Order(orderBy)
	}
}

func pageScope(opt repo.ListTasksOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opt.Limit > 0 {
			db = db.Limit(opt.Limit)
		}
		if opt.Offset > 0 {
			db = db.Offset(opt.Offset)
		}
		return db
	}
}
