package usecase

import (
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/task"
	repo "productivity-tracker/internal/task/repository"
)

// mergeUpdate overlays the provided fields onto existing and validates them.
func (uc *implUseCase) mergeUpdate(existing model.Task, input task.UpdateInput) (repo.UpdateTaskOptions, error) {
	opt := repo.UpdateTaskOptions{
		ID:         existing.ID,
		Name:       existing.Name,
		TimeSpent:  existing.TimeSpent,
		FocusLevel: existing.FocusLevel,
		DateWorked: existing.DateWorked,
	}

	if input.Name != nil {
		name, err := task.ValidateName(*input.Name)
		if err != nil {
			return opt, err
		}
		opt.Name = name
	}
	if input.TimeSpent != nil {
		if err := task.ValidateTimeSpent(*input.TimeSpent); err != nil {
			return opt, err
		}
		opt.TimeSpent = *input.TimeSpent
	}
	if input.FocusLevel != nil {
		if err := task.ValidateFocusLevel(*input.FocusLevel); err != nil {
			return opt, err
		}
		opt.FocusLevel = *input.FocusLevel
	}
	if input.DateWorked != nil {
		date, err := task.ValidateDate(*input.DateWorked)
		if err != nil {
			return opt, err
		}
		opt.DateWorked = date
	}
	return opt, nil
}
