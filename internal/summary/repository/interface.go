package repository

import (
	"context"

	"productivity-tracker/internal/model"
)

// Repository is the composed interface for the summary data store.
type Repository interface {
	SummaryRepository
}

// SummaryRepository defines all data access methods for WeeklySummary.
type SummaryRepository interface {
	UpsertSummary(ctx context.Context, opt UpsertSummaryOptions) (model.WeeklySummary, error)
	GetOneSummary(ctx context.Context, opt GetOneSummaryOptions) (model.WeeklySummary, error)
	ListSummaries(ctx context.Context, opt ListSummariesOptions) ([]model.WeeklySummary, int64, error)
	UpdateSummary(ctx context.Context, opt UpdateSummaryOptions) (model.WeeklySummary, error)
	DeleteSummary(ctx context.Context, id uint) error
	DeleteAllSummaries(ctx context.Context) error
	CountSummaries(ctx context.Context) (int64, error)
}

// VectorRepository embeds summaries and searches them by similarity.
type VectorRepository interface {
	EnsureCollection(ctx context.Context) error
	EmbedSummary(ctx context.Context, s model.WeeklySummary) error
	SearchSummaries(ctx context.Context, opt SearchVectorsOptions) ([]VectorMatch, error)
	DeleteSummary(ctx context.Context, s model.WeeklySummary) error
}
