package search

import "productivity-tracker/internal/model"

// SortMode selects the ordering of a result set.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDate      SortMode = "date"
	SortTasks     SortMode = "tasks"
	SortHours     SortMode = "hours"
)

// Normalize maps unknown modes to relevance.
func (m SortMode) Normalize() SortMode {
	switch m {
	case SortRelevance, SortDate, SortTasks, SortHours:
		return m
	}
	return SortRelevance
}

// Result is a summary that matched a query, with its score and highlighted text.
type Result struct {
	model.WeeklySummary
	RelevanceScore             float64  `json:"relevance_score"`
	HighlightedSummary         string   `json:"highlighted_summary"`
	HighlightedRecommendations []string `json:"highlighted_recommendations"`

	// Matches are the lower-cased substrings that produced the score.
	Matches []string `json:"-"`

	// order is the result's position in the input, used to break ties.
	order int
}
