package usecase

import (
	"context"

	"productivity-tracker/internal/task"
	repo "productivity-tracker/internal/task/repository"
)

// List returns a page of Tasks within the optional date range.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:   tasks,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
		HasMore: int64(input.Offset+len(tasks)) < total,
	}, nil
}
