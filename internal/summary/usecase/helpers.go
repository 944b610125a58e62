package usecase

import (
	"fmt"

	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/summary/repository"
)

// weekBounds snaps weekStart to the Sunday starting its week. An empty
// weekEnd becomes the Saturday closing it.
func (uc *implUseCase) weekBounds(weekStart, weekEnd string) (string, string, error) {
	start, err := uc.cal.ParseDate(weekStart)
	if err != nil {
		return "", "", summary.ErrInvalidWeek
	}
	start = uc.cal.StartOfWeek(start)

	end := uc.cal.EndOfWeek(start)
	if weekEnd != "" {
		if end, err = uc.cal.ParseDate(weekEnd); err != nil {
			return "", "", summary.ErrInvalidWeek
		}
		if end.Before(start) {
			return "", "", summary.ErrInvalidWeek
		}
	}
	return uc.cal.Format(start), uc.cal.Format(end), nil
}

func (uc *implUseCase) validDate(date string) bool {
	_, err := uc.cal.ParseDate(date)
	return err == nil
}

func toContext(summaries []model.WeeklySummary) []coach.ContextSummary {
	out := make([]coach.ContextSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, coach.ContextSummary{
			WeekRange:       fmt.Sprintf("%s to %s", s.WeekStart, s.WeekEnd),
			Summary:         s.Summary,
			Recommendations: s.Recommendations,
		})
	}
	return out
}

// mergeUpdate overlays the provided fields onto existing. It reports whether
// the embedded text changed.
func (uc *implUseCase) mergeUpdate(existing model.WeeklySummary, input summary.UpdateInput) (repository.UpdateSummaryOptions, bool, error) {
	opt := repository.UpdateSummaryOptions{
		ID:              existing.ID,
		WeekEnd:         existing.WeekEnd,
		Summary:         existing.Summary,
		Recommendations: existing.Recommendations,
		Stats:           existing.Stats,
	}
	reindex := false
	if input.WeekEnd != nil {
		if !uc.validDate(*input.WeekEnd) {
			return opt, false, summary.ErrInvalidWeek
		}
		opt.WeekEnd, _ = uc.cal.NormalizeDate(*input.WeekEnd)
		reindex = reindex || opt.WeekEnd != existing.WeekEnd
	}
	if input.Summary != nil {
		opt.Summary = *input.Summary
		reindex = true
	}
	if input.Recommendations != nil {
		opt.Recommendations = *input.Recommendations
		reindex = true
	}
	if input.Stats != nil {
		opt.Stats = *input.Stats
	}
	return opt, reindex, nil
}
