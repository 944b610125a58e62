package rdb

import (
	"gorm.io/gorm"

	repo "productivity-tracker/internal/summary/repository"
)

const defaultOrder = "week_start DESC, id DESC"

func getOneScope(opt repo.GetOneSummaryOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opt.ID != 0 {
			db = db.Where("id = ?", opt.ID)
		}
		if opt.WeekStart != "" {
			db = db.Where("week_start = ?", opt.WeekStart)
		}
		return db
	}
}

// filterScope applies the week_start filter: an inclusive range with both
// bounds, an exact week with only StartDate, an upper bound with only EndDate.
func filterScope(opt repo.ListSummariesOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case opt.StartDate != "" && opt.EndDate != "":
			db = db.Where("week_start >= ? AND week_start <= ?", opt.StartDate, opt.EndDate)
		case opt.StartDate != "":
			db = db.Where("week_start = ?", opt.StartDate)
		case opt.EndDate != "":
			db = db.Where("week_start <= ?", opt.EndDate)
		}
		if opt.IDs != nil {
			db = db.Where("id IN ?", opt.IDs)
		}
		return db
	}
}

func pageScope(opt repo.ListSummariesOptions) func(*gorm.DB) *gorm.DB {
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
