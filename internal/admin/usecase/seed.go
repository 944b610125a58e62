package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"productivity-tracker/internal/admin"
	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	summaryRepo "productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
)

// Seed clears every task and summary, then generates sample tasks for each of
// the last Days days and a summary for every week that received tasks.
func (uc *implUseCase) Seed(ctx context.Context, input admin.SeedInput) (admin.SeedOutput, error) {
	ref := input.Reference
	if ref.IsZero() {
		ref = time.Now()
	}
	days := input.Days
	if days <= 0 {
		days = admin.DefaultSeedDays
	}

	if err := uc.taskRepo.DeleteAllTasks(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.Seed DeleteAllTasks: %v", err)
		return admin.SeedOutput{}, fmt.Errorf("%w: %v", admin.ErrSeedFailed, err)
	}
	if err := uc.summaryRepo.DeleteAllSummaries(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.Seed DeleteAllSummaries: %v", err)
		return admin.SeedOutput{}, fmt.Errorf("%w: %v", admin.ErrSeedFailed, err)
	}
	uc.l.Infof(ctx, "uc.Seed: cleared existing data")

	tasks, err := uc.taskRepo.CreateTasks(ctx, uc.sampleTasks(ref, days))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Seed CreateTasks: %v", err)
		return admin.SeedOutput{}, fmt.Errorf("%w: %v", admin.ErrSeedFailed, err)
	}

	bucketer := analytics.NewBucketer(uc.cal)
	groups := bucketer.GroupByWeek(tasks)
	summaries := 0
	for _, weekStart := range analytics.WeekKeys(groups) {
		if err := uc.seedSummary(ctx, weekStart, groups[weekStart]); err != nil {
			return admin.SeedOutput{}, fmt.Errorf("%w: %v", admin.ErrSeedFailed, err)
		}
		summaries++
	}

	uc.l.Infof(ctx, "uc.Seed: created %d tasks and %d summaries", len(tasks), summaries)
	return admin.SeedOutput{TasksCreated: len(tasks), SummariesCreated: summaries}, nil
}

// sampleTasks walks back from ref one day at a time. The reference day gets
// the first three templates; weekdays get 1-6 random tasks, weekends 0-2.
func (uc *implUseCase) sampleTasks(ref time.Time, days int) []taskRepo.CreateTaskOptions {
	var opts []taskRepo.CreateTaskOptions
	for offset := 0; offset < days; offset++ {
		day := uc.cal.AddDays(ref, -offset)

		count := referenceDayTasks
		if offset > 0 {
			if wd := day.In(uc.cal.Location()).Weekday(); wd == time.Saturday || wd == time.Sunday {
				count = uc.rnd.IntN(3)
			} else {
				count = 1 + uc.rnd.IntN(6)
			}
		}

		for i := 0; i < count; i++ {
			tpl := templates[i]
			if offset > 0 {
				tpl = templates[uc.rnd.IntN(len(templates))]
			}
			opts = append(opts, taskRepo.CreateTaskOptions{
				Name:       tpl.name,
				TimeSpent:  uc.drawHours(tpl),
				FocusLevel: tpl.focus,
				DateWorked: uc.cal.Format(day),
			})
		}
	}
	return opts
}

// drawHours picks a duration in the template's range, rounded to a quarter hour.
func (uc *implUseCase) drawHours(tpl taskTemplate) float64 {
	h := tpl.minHours + uc.rnd.Float64()*(tpl.maxHours-tpl.minHours)
	return math.Round(h*4) / 4
}

// seedSummary writes and stores the summary of one week. Writer failures
// fall back to the offline summary so seeding never depends on the LLM.
func (uc *implUseCase) seedSummary(ctx context.Context, weekStart string, tasks []model.Task) error {
	start, err := uc.cal.ParseDate(weekStart)
	if err != nil {
		return err
	}
	weekEnd := uc.cal.Format(uc.cal.EndOfWeek(start))
	stats := analytics.WeeklyStats(tasks)

	out := coach.Fallback()
	if uc.writer != nil {
		written, err := uc.writer.Write(ctx, coach.Input{
			Tasks:     tasks,
			WeekStart: weekStart,
			WeekEnd:   weekEnd,
			Stats:     stats,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.seedSummary Write %s: %v, using fallback summary", weekStart, err)
		} else {
			out = written
		}
	}

	s, err := uc.summaryRepo.UpsertSummary(ctx, summaryRepo.UpsertSummaryOptions{
		WeekStart:       weekStart,
		WeekEnd:         weekEnd,
		Summary:         out.Summary,
		Recommendations: out.Recommendations,
		Stats:           stats,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.seedSummary UpsertSummary: %v", err)
		return err
	}

	if uc.indexer != nil {
		if err := uc.indexer.Index(ctx, s); err != nil {
			uc.l.Warnf(ctx, "uc.seedSummary Index %s: %v", weekStart, err)
		}
	}
	return nil
}
