package usecase

import (
	"context"
	"time"

	"productivity-tracker/internal/analytics"
	taskRepo "productivity-tracker/internal/task/repository"
)

// RangeReport loads the recent tasks and buckets those inside the resolved range.
func (uc *implUseCase) RangeReport(ctx context.Context, input analytics.RangeReportInput) (analytics.RangeReportOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	cal := uc.bucketer.Calendar()

	floor := cal.StartOfWeek(cal.AddDays(now, -7*lookbackWeeks))
	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		StartDate: cal.Format(floor),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RangeReport ListTasks: %v", err)
		return analytics.RangeReportOutput{}, err
	}

	r := uc.bucketer.ComputeRange(input.Range, tasks, now)
	inRange := uc.bucketer.FilterTasks(tasks, r)

	return analytics.RangeReportOutput{
		Range:   r,
		Tasks:   inRange,
		Daily:   uc.bucketer.BucketDaily(inRange, r),
		Heatmap: uc.bucketer.BucketHeatmap(inRange, r),
		Stats:   analytics.AnalyzeTasks(inRange),
		Summary: analytics.WeeklyStats(inRange),
	}, nil
}
