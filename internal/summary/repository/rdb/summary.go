package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"productivity-tracker/internal/model"
	repo "productivity-tracker/internal/summary/repository"
)

// UpsertSummary inserts the summary of a week or overwrites the stored one.
func (r *implRepository) UpsertSummary(ctx context.Context, opt repo.UpsertSummaryOptions) (model.WeeklySummary, error) {
	s := model.WeeklySummary{
		WeekStart:       opt.WeekStart,
		WeekEnd:         opt.WeekEnd,
		Summary:         opt.Summary,
		Recommendations: nonNil(opt.Recommendations),
		Stats:           opt.Stats,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_start"}},
		DoUpdates: clause.AssignmentColumns([]string{"week_end", "summary", "recommendations", "stats", "updated_at"}),
	}).Create(&s).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSummary"), err)
		return model.WeeklySummary{}, repo.ErrFailedToInsert
	}
	// The generated ID is not reliable after a conflict on every driver.
	return r.GetOneSummary(ctx, repo.GetOneSummaryOptions{WeekStart: opt.WeekStart})
}

// GetOneSummary retrieves a single summary.
// Returns zero-value WeeklySummary (ID == 0) when not found.
func (r *implRepository) GetOneSummary(ctx context.Context, opt repo.GetOneSummaryOptions) (model.WeeklySummary, error) {
	var s model.WeeklySummary
	err := r.db.WithContext(ctx).Scopes(getOneScope(opt)).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WeeklySummary{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSummary"), err)
		return model.WeeklySummary{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSummaries returns a page of summaries, newest week first, and the total
// count of matching rows.
func (r *implRepository) ListSummaries(ctx context.Context, opt repo.ListSummariesOptions) ([]model.WeeklySummary, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.WeeklySummary{}).Scopes(filterScope(opt)).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListSummaries"), err)
		return nil, 0, repo.ErrFailedToList
	}

	summaries := []model.WeeklySummary{}
	err := r.db.WithContext(ctx).
		Scopes(filterScope(opt), pageScope(opt)).
		Order(defaultOrder).
		Find(&summaries).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSummaries"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return summaries, total, nil
}

// UpdateSummary overwrites the stored values and returns the updated entity.
func (r *implRepository) UpdateSummary(ctx context.Context, opt repo.UpdateSummaryOptions) (model.WeeklySummary, error) {
	s := model.WeeklySummary{
		ID:              opt.ID,
		WeekEnd:         opt.WeekEnd,
		Summary:         opt.Summary,
		Recommendations: nonNil(opt.Recommendations),
		Stats:           opt.Stats,
	}
	err := r.db.WithContext(ctx).Model(&s).
		Select("week_end", "summary", "recommendations", "stats", "updated_at").
		Updates(&s).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSummary"), err)
		return model.WeeklySummary{}, repo.ErrFailedToUpdate
	}
	return r.GetOneSummary(ctx, repo.GetOneSummaryOptions{ID: opt.ID})
}

// DeleteSummary removes a summary by ID.
func (r *implRepository) DeleteSummary(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.WeeklySummary{}, id).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSummary"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteAllSummaries removes every summary.
func (r *implRepository) DeleteAllSummaries(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.WeeklySummary{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAllSummaries"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountSummaries returns the number of stored summaries.
func (r *implRepository) CountSummaries(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.WeeklySummary{}).Count(&n).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountSummaries"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
