package usecase

import (
	"context"

	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/task"
)

// Count returns the number of stored tasks.
func (uc *implUseCase) Count(ctx context.Context) (int64, error) {
	n, err := uc.repo.CountTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Count CountTasks: %v", err)
		return 0, err
	}
	return n, nil
}

// CalculateStats aggregates tasks supplied by the caller.
func (uc *implUseCase) CalculateStats(ctx context.Context, tasks []model.Task) (analytics.Stats, error) {
	if len(tasks) == 0 {
		return analytics.Stats{}, task.ErrEmptyTasks
	}
	return analytics.AnalyzeTasks(tasks), nil
}
