package usecase

import (
	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/search"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
	contextWeeks       = 2
)

// implUseCase is the private implementation of summary.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	vectorRepo repository.VectorRepository
	taskRepo   taskRepo.Repository
	writer     coach.Writer
	improver   *search.QueryImprover
	cal        *datemath.Calendar
	threshold  float64
}

var _ summary.UseCase = (*implUseCase)(nil)

// New creates a new summary UseCase. A nil vectorRepo limits search to keyword
// scoring; a nil writer disables generation; a nil improver only sanitises queries.
func New(
	l log.Logger,
	repo repository.Repository,
	vectorRepo repository.VectorRepository,
	taskRepo taskRepo.Repository,
	writer coach.Writer,
	improver *search.QueryImprover,
	cal *datemath.Calendar,
	threshold float64,
) *implUseCase {
	if improver == nil {
		improver = search.NewQueryImprover(l, nil, 0, 0)
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		vectorRepo: vectorRepo,
		taskRepo:   taskRepo,
		writer:     writer,
		improver:   improver,
		cal:        cal,
		threshold:  threshold,
	}
}
