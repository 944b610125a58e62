package admin

import "context"

// UseCase defines administrative operations.
type UseCase interface {
	// Seed wipes all tasks and summaries and replaces them with generated
	// sample data: tasks for each past day and one summary per week.
	Seed(ctx context.Context, input SeedInput) (SeedOutput, error)
}
