package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"productivity-tracker/internal/admin"
	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	summaryRepo "productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

// Indexer embeds a stored summary for search.
type Indexer interface {
	Index(ctx context.Context, s model.WeeklySummary) error
}

type implUseCase struct {
	l           log.Logger
	taskRepo    taskRepo.Repository
	summaryRepo summaryRepo.Repository
	indexer     Indexer
	writer      coach.Writer
	cal         *datemath.Calendar
	rnd         *rand.Rand
}

var _ admin.UseCase = (*implUseCase)(nil)

// New creates a new admin UseCase. A nil writer makes every seeded week use
// the offline fallback summary. A nil rnd is seeded from the clock.
func New(
	l log.Logger,
	taskRepo taskRepo.Repository,
	summaryRepo summaryRepo.Repository,
	indexer Indexer,
	writer coach.Writer,
	cal *datemath.Calendar,
	rnd *rand.Rand,
) *implUseCase {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &implUseCase{
		l:           l,
		taskRepo:    taskRepo,
		summaryRepo: summaryRepo,
		indexer:     indexer,
		writer:      writer,
		cal:         cal,
		rnd:         rnd,
	}
}
