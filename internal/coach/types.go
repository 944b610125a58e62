package coach

import "productivity-tracker/internal/model"

// Input is one week of work to write about.
type Input struct {
	Tasks     []model.Task
	WeekStart string
	WeekEnd   string
	Stats     model.SummaryStats
	Context   ContextSummaries
}

// ContextSummaries are neighbouring weeks shown to the model so it does not
// repeat earlier advice.
type ContextSummaries struct {
	Before []ContextSummary `json:"before"`
	After  []ContextSummary `json:"after"`
}

// ContextSummary is the part of a neighbouring summary the prompt needs.
type ContextSummary struct {
	WeekRange       string   `json:"weekRange"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Output is the structured response of the model.
type Output struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}
