// Package scheduler runs background jobs on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/summary"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

const defaultJobTimeout = 2 * time.Minute

// WeekGenerator is the part of the summary use case the weekly job needs.
type WeekGenerator interface {
	GenerateForWeek(ctx context.Context, weekStart string) (model.WeeklySummary, error)
}

// Config controls which jobs are registered.
type Config struct {
	WeeklySummarySpec string
	JobTimeout        time.Duration
}

// Scheduler wraps a cron runner bound to the calendar's timezone.
type Scheduler struct {
	l       log.Logger
	cron    *cron.Cron
	gen     WeekGenerator
	cal     *datemath.Calendar
	timeout time.Duration
	now     func() time.Time
}

// New registers the weekly summary job. The schedule uses the six-field format
// with a leading seconds field.
func New(l log.Logger, gen WeekGenerator, cal *datemath.Calendar, cfg Config) (*Scheduler, error) {
	if cal == nil {
		cal = datemath.NewWithLocation(nil)
	}
	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}

	s := &Scheduler{
		l:       l,
		cron:    cron.New(cron.WithLocation(cal.Location()), cron.WithSeconds()),
		gen:     gen,
		cal:     cal,
		timeout: timeout,
		now:     time.Now,
	}

	if _, err := s.cron.AddFunc(cfg.WeeklySummarySpec, s.runWeeklySummary); err != nil {
		return nil, fmt.Errorf("scheduler: invalid weekly summary spec %q: %w", cfg.WeeklySummarySpec, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.l.Infof(context.Background(), "Scheduler started with %d job(s)", len(s.cron.Entries()))
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// PreviousWeekStart returns the Sunday that starts the week before now.
func (s *Scheduler) PreviousWeekStart(now time.Time) string {
	return s.cal.Format(s.cal.AddDays(s.cal.StartOfWeek(now), -7))
}

func (s *Scheduler) runWeeklySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.generatePreviousWeek(ctx); err != nil {
		s.l.Errorf(ctx, "scheduler.runWeeklySummary: %v", err)
	}
}

func (s *Scheduler) generatePreviousWeek(ctx context.Context) error {
	week := s.PreviousWeekStart(s.now())

	sum, err := s.gen.GenerateForWeek(ctx, week)
	if err != nil {
		if errors.Is(err, summary.ErrEmptyTasks) {
			s.l.Infof(ctx, "scheduler: no tasks recorded for week %s, skipping summary", week)
			return nil
		}
		return fmt.Errorf("generate week %s: %w", week, err)
	}

	s.l.Infof(ctx, "scheduler: generated summary %d for week %s", sum.ID, week)
	return nil
}
