package usecase

import (
	"context"

	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/summary/repository"
)

// List returns a page of summaries, newest week first.
func (uc *implUseCase) List(ctx context.Context, input summary.ListInput) (summary.ListOutput, error) {
	summaries, total, err := uc.repo.ListSummaries(ctx, repository.ListSummariesOptions{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSummaries: %v", err)
		return summary.ListOutput{}, err
	}
	return summary.ListOutput{
		Summaries: summaries,
		Total:     total,
		Limit:     input.Limit,
		Offset:    input.Offset,
		HasMore:   int64(input.Offset+len(summaries)) < total,
	}, nil
}

// Count returns the number of stored summaries.
func (uc *implUseCase) Count(ctx context.Context) (int64, error) {
	n, err := uc.repo.CountSummaries(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Count CountSummaries: %v", err)
		return 0, err
	}
	return n, nil
}
