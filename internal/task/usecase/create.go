package usecase

import (
	"context"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/task"
	repo "productivity-tracker/internal/task/repository"
)

// Create validates and stores a new Task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	opt, err := uc.validateCreate(input)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) validateCreate(input task.CreateInput) (repo.CreateTaskOptions, error) {
	name, err := task.ValidateName(input.Name)
	if err != nil {
		return repo.CreateTaskOptions{}, err
	}
	if err := task.ValidateTimeSpent(input.TimeSpent); err != nil {
		return repo.CreateTaskOptions{}, err
	}
	if err := task.ValidateFocusLevel(input.FocusLevel); err != nil {
		return repo.CreateTaskOptions{}, err
	}
	date, err := task.ValidateDate(input.DateWorked)
	if err != nil {
		return repo.CreateTaskOptions{}, err
	}
	return repo.CreateTaskOptions{
		Name:       name,
		TimeSpent:  input.TimeSpent,
		FocusLevel: input.FocusLevel,
		DateWorked: date,
	}, nil
}
