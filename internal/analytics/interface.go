package analytics

import "context"

// UseCase runs the bucketer over stored tasks and summaries.
type UseCase interface {
	// RangeReport resolves a range keyword against Now and returns the
	// chart datasets and statistics of the tasks inside it.
	RangeReport(ctx context.Context, input RangeReportInput) (RangeReportOutput, error)

	// Weeks lists the weeks between StartDate and EndDate, newest first, each
	// with its tasks' stats and the stored summary of that week if any.
	Weeks(ctx context.Context, input WeeksInput) (WeeksOutput, error)
}
