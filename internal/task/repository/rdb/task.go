package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"productivity-tracker/internal/model"
	repo "productivity-tracker/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := toTask(opt)
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// CreateTasks inserts all rows in one transaction.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return []model.Task{}, nil
	}
	tasks := make([]model.Task, len(opts))
	for i, opt := range opts {
		tasks[i] = toTask(opt)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&tasks, 100).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

// GetOneTask retrieves a single Task.
// Returns zero-value Task (ID == 0) when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Scopes(getOneScope(opt)).Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks and the total count of matching rows.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Scopes(dateRangeScope(opt)).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	tasks := []model.Task{}
	err := r.db.WithContext(ctx).
		Scopes(dateRangeScope(opt), orderScope(opt), pageScope(opt)).
		Find(&tasks).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites the stored values and returns the updated entity.
// Returns zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{ID: opt.ID}).Updates(map[string]any{
		"name":        opt.Name,
		"time_spent":  opt.TimeSpent,
		"focus_level": opt.FocusLevel,
		"date_worked": opt.DateWorked,
	})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), res.Error)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteAllTasks removes every Task.
func (r *implRepository) DeleteAllTasks(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAllTasks"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountTasks returns the number of stored Tasks.
func (r *implRepository) CountTasks(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&n).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

func toTask(opt repo.CreateTaskOptions) model.Task {
	return model.Task{
		Name:       opt.Name,
		TimeSpent:  opt.TimeSpent,
		FocusLevel: opt.FocusLevel,
		DateWorked: opt.DateWorked,
	}
}
