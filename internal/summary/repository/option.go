package repository

import "productivity-tracker/internal/model"

// UpsertSummaryOptions holds the values stored for a week. An existing row
// with the same WeekStart is overwritten.
type UpsertSummaryOptions struct {
	WeekStart       string
	WeekEnd         string
	Summary         string
	Recommendations []string
	Stats           model.SummaryStats
}

// GetOneSummaryOptions selects a single summary by ID or by WeekStart.
type GetOneSummaryOptions struct {
	ID        uint
	WeekStart string
}

// ListSummariesOptions holds filter and pagination parameters.
// Limit <= 0 returns every matching row.
type ListSummariesOptions struct {
	StartDate string
	EndDate   string
	IDs       []uint
	Limit     int
	Offset    int
}

// UpdateSummaryOptions holds the full set of values to store for a summary.
type UpdateSummaryOptions struct {
	ID              uint
	WeekEnd         string
	Summary         string
	Recommendations []string
	Stats           model.SummaryStats
}

// SearchVectorsOptions holds parameters for a similarity search.
// Matches scoring below Threshold are dropped.
type SearchVectorsOptions struct {
	Query     string
	Limit     int
	Threshold float64
}

// VectorMatch is a stored summary whose vector is close to the query.
type VectorMatch struct {
	SummaryID uint
	WeekStart string
	Score     float64
}
