package usecase

import (
	"productivity-tracker/internal/task"
	"productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
