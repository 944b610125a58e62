package summary

import (
	"context"

	"productivity-tracker/internal/model"
)

// UseCase defines the business logic interface for the weekly summary domain.
type UseCase interface {
	// Generate writes a summary with the LLM and stores it, replacing any
	// summary already stored for the same week.
	Generate(ctx context.Context, input GenerateInput) (model.WeeklySummary, error)

	// GenerateForWeek loads the stored tasks of the week starting at weekStart
	// and generates its summary.
	GenerateForWeek(ctx context.Context, weekStart string) (model.WeeklySummary, error)

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id uint) (model.WeeklySummary, error)
	Update(ctx context.Context, input UpdateInput) (model.WeeklySummary, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)

	// Search finds summaries relevant to a free-text query.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Index embeds and stores the vector of a summary. It is a no-op when
	// vector search is not configured.
	Index(ctx context.Context, s model.WeeklySummary) error
}
