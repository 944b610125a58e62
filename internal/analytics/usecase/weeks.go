package usecase

import (
	"context"
	"time"

	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/model"
	summaryRepo "productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
)

// Weeks defaults to the last 26 weeks up to now.
func (uc *implUseCase) Weeks(ctx context.Context, input analytics.WeeksInput) (analytics.WeeksOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	start, end, err := uc.weeksBounds(input, now)
	if err != nil {
		return analytics.WeeksOutput{}, err
	}

	weeks := uc.bucketer.WeeksInRange(start, end, now)
	if len(weeks) == 0 {
		return analytics.WeeksOutput{Weeks: []analytics.WeekReport{}}, nil
	}
	newest, oldest := weeks[0], weeks[len(weeks)-1]
	cal := uc.bucketer.Calendar()

	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		StartDate: oldest.WeekStart,
		EndDate:   cal.Format(cal.AddDays(newest.Start, 7)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Weeks ListTasks: %v", err)
		return analytics.WeeksOutput{}, err
	}

	summaries, _, err := uc.summaryRepo.ListSummaries(ctx, summaryRepo.ListSummariesOptions{
		StartDate: oldest.WeekStart,
		EndDate:   newest.WeekStart,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Weeks ListSummaries: %v", err)
		return analytics.WeeksOutput{}, err
	}
	byWeek := make(map[string]model.WeeklySummary, len(summaries))
	for _, s := range summaries {
		byWeek[s.WeekStart] = s
	}

	groups := uc.bucketer.GroupByWeek(tasks)
	reports := make([]analytics.WeekReport, 0, len(weeks))
	for _, w := range weeks {
		weekTasks := groups[w.WeekStart]
		if weekTasks == nil {
			weekTasks = []model.Task{}
		}
		report := analytics.WeekReport{
			Week:  w,
			Tasks: weekTasks,
			Stats: analytics.WeeklyStats(weekTasks),
		}
		if s, ok := byWeek[w.WeekStart]; ok {
			report.Summary = &s
		}
		reports = append(reports, report)
	}
	return analytics.WeeksOutput{Weeks: reports}, nil
}

func (uc *implUseCase) weeksBounds(input analytics.WeeksInput, now time.Time) (time.Time, time.Time, error) {
	cal := uc.bucketer.Calendar()

	end := cal.EndOfDay(now)
	if input.EndDate != "" {
		d, err := cal.ParseDate(input.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, analytics.ErrInvalidDate
		}
		end = cal.EndOfDay(d)
	}

	start := cal.StartOfWeek(cal.AddDays(end, -7*(lookbackWeeks-1)))
	if input.StartDate != "" {
		d, err := cal.ParseDate(input.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, analytics.ErrInvalidDate
		}
		start = d
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, analytics.ErrInvalidRange
	}
	return start, end, nil
}
