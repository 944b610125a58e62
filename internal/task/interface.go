package task

import (
	"context"

	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id uint) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id uint) error

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int64, error)

	// CalculateStats aggregates the given tasks without touching storage.
	CalculateStats(ctx context.Context, tasks []model.Task) (analytics.Stats, error)
}
