package summary

import (
	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/search"
)

// --- UseCase Inputs ---

// GenerateInput is one week of tasks to summarise. Stats are computed from
// Tasks when nil.
type GenerateInput struct {
	Tasks     []model.Task
	WeekStart string
	WeekEnd   string
	Stats     *model.SummaryStats
	Context   coach.ContextSummaries
}

// ListInput filters by week_start. With both bounds the range is inclusive;
// StartDate alone selects that exact week; EndDate alone is an upper bound.
type ListInput struct {
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID              uint
	WeekEnd         *string
	Summary         *string
	Recommendations *[]string
	Stats           *model.SummaryStats
}

type SearchInput struct {
	Query string
	Sort  search.SortMode
	Limit int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Summaries []model.WeeklySummary
	Total     int64
	Limit     int
	Offset    int
	HasMore   bool
}

// SearchMode records which engine answered a search.
type SearchMode string

const (
	SearchModeVector  SearchMode = "vector"
	SearchModeKeyword SearchMode = "keyword"
)

type SearchOutput struct {
	Results []search.Result
	Mode    SearchMode
}
