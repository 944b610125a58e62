package usecase

import (
	"context"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/summary/repository"
)

// Detail retrieves a single summary by ID. Returns ErrSummaryNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id uint) (model.WeeklySummary, error) {
	s, err := uc.repo.GetOneSummary(ctx, repository.GetOneSummaryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneSummary: %v", err)
		return model.WeeklySummary{}, err
	}
	if s.ID == 0 {
		return model.WeeklySummary{}, summary.ErrSummaryNotFound
	}
	return s, nil
}

// Update applies a partial update and re-embeds the summary when its text changed.
func (uc *implUseCase) Update(ctx context.Context, input summary.UpdateInput) (model.WeeklySummary, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.WeeklySummary{}, err
	}

	opt, reindex, err := uc.mergeUpdate(existing, input)
	if err != nil {
		return model.WeeklySummary{}, err
	}

	s, err := uc.repo.UpdateSummary(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateSummary: %v", err)
		return model.WeeklySummary{}, err
	}

	if reindex {
		if err := uc.Index(ctx, s); err != nil {
			uc.l.Warnf(ctx, "uc.Update Index: %v", err)
		}
	}
	return s, nil
}

// Delete removes a summary and its vector. Returns ErrSummaryNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id uint) error {
	existing, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteSummary(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteSummary: %v", err)
		return err
	}

	if uc.vectorRepo != nil {
		if err := uc.vectorRepo.DeleteSummary(ctx, existing); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteSummary vector: %v", err)
		}
	}
	return nil
}
