package usecase

import (
	"productivity-tracker/internal/analytics"
	summaryRepo "productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/log"
)

// lookbackWeeks bounds how far back task data is loaded. It matches the
// widest range the bucketer resolves.
const lookbackWeeks = 26

type implUseCase struct {
	l           log.Logger
	bucketer    *analytics.Bucketer
	taskRepo    taskRepo.Repository
	summaryRepo summaryRepo.Repository
}

var _ analytics.UseCase = (*implUseCase)(nil)

// New creates a new analytics UseCase.
func New(
	l log.Logger,
	bucketer *analytics.Bucketer,
	taskRepo taskRepo.Repository,
	summaryRepo summaryRepo.Repository,
) *implUseCase {
	return &implUseCase{
		l:           l,
		bucketer:    bucketer,
		taskRepo:    taskRepo,
		summaryRepo: summaryRepo,
	}
}
