package usecase

import (
	"context"
	"fmt"

	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/metrics"
)

const (
	triggerAPI       = "api"
	triggerScheduler = "scheduler"
)

// Generate writes and stores the summary of the submitted week.
func (uc *implUseCase) Generate(ctx context.Context, input summary.GenerateInput) (model.WeeklySummary, error) {
	return uc.generate(ctx, input, triggerAPI)
}

// GenerateForWeek summarises the stored tasks of the week containing
// weekStart, giving the model the two previous summaries as context.
func (uc *implUseCase) GenerateForWeek(ctx context.Context, weekStart string) (model.WeeklySummary, error) {
	day, err := uc.cal.ParseDate(weekStart)
	if err != nil {
		return model.WeeklySummary{}, summary.ErrInvalidWeek
	}
	start := uc.cal.StartOfWeek(day)

	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		StartDate: uc.cal.Format(start),
		EndDate:   uc.cal.Format(uc.cal.AddDays(start, 7)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateForWeek ListTasks: %v", err)
		return model.WeeklySummary{}, err
	}

	previous, _, err := uc.repo.ListSummaries(ctx, repository.ListSummariesOptions{
		StartDate: uc.cal.Format(uc.cal.AddDays(start, -7*contextWeeks)),
		EndDate:   uc.cal.Format(uc.cal.AddDays(start, -7)),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.GenerateForWeek ListSummaries: %v", err)
	}

	return uc.generate(ctx, summary.GenerateInput{
		Tasks:     tasks,
		WeekStart: uc.cal.Format(start),
		Context:   coach.ContextSummaries{Before: toContext(previous)},
	}, triggerScheduler)
}

func (uc *implUseCase) generate(ctx context.Context, input summary.GenerateInput, trigger string) (model.WeeklySummary, error) {
	if len(input.Tasks) == 0 {
		return model.WeeklySummary{}, summary.ErrEmptyTasks
	}
	start, end, err := uc.weekBounds(input.WeekStart, input.WeekEnd)
	if err != nil {
		return model.WeeklySummary{}, err
	}
	if uc.writer == nil {
		metrics.RecordSummaryGeneration(trigger, "disabled")
		return model.WeeklySummary{}, summary.ErrGeneratorDisabled
	}

	stats := analytics.WeeklyStats(input.Tasks)
	if input.Stats != nil {
		stats = *input.Stats
	}

	out, err := uc.writer.Write(ctx, coach.Input{
		Tasks:     input.Tasks,
		WeekStart: start,
		WeekEnd:   end,
		Stats:     stats,
		Context:   input.Context,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.generate Write: %v", err)
		metrics.RecordSummaryGeneration(trigger, "failed")
		return model.WeeklySummary{}, fmt.Errorf("%w: %v", summary.ErrGenerationFailed, err)
	}

	s, err := uc.repo.UpsertSummary(ctx, repository.UpsertSummaryOptions{
		WeekStart:       start,
		WeekEnd:         end,
		Summary:         out.Summary,
		Recommendations: out.Recommendations,
		Stats:           stats,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.generate UpsertSummary: %v", err)
		metrics.RecordSummaryGeneration(trigger, "failed")
		return model.WeeklySummary{}, err
	}

	if err := uc.Index(ctx, s); err != nil {
		uc.l.Warnf(ctx, "uc.generate Index: %v", err)
	}

	metrics.RecordSummaryGeneration(trigger, "success")
	return s, nil
}

// Index embeds s for vector search when a vector store is configured.
func (uc *implUseCase) Index(ctx context.Context, s model.WeeklySummary) error {
	if uc.vectorRepo == nil {
		return nil
	}
	return uc.vectorRepo.EmbedSummary(ctx, s)
}
