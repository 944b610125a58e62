package http

import (
	"errors"
	"time"

	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/search"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/task"
)

const (
	defaultLimit       = 10
	defaultSearchLimit = 10
	maxLimit           = 100

	searchModeHeader = "X-Search-Mode"
)

var (
	errInvalidLimit  = errors.New("limit must be between 1 and 100")
	errInvalidOffset = errors.New("offset must be greater than or equal to 0")
	errInvalidID     = errors.New("id must be a positive integer")
	errNoTasks       = errors.New("at least one task is required")
	errInvalidSort   = errors.New("sort must be one of relevance, date, tasks, hours")
	errInvalidFocus  = errors.New("avg_focus must be one of low, medium, high")
)

// --- Request DTOs ---

type taskReq struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"        binding:"required"`
	TimeSpent  float64 `json:"time_spent"`
	FocusLevel string  `json:"focus_level" binding:"required"`
	DateWorked string  `json:"date_worked" binding:"required"`
}

type statsReq struct {
	TotalTasks int    `json:"total_tasks"`
	TotalHours string `json:"total_hours"`
	AvgFocus   string `json:"avg_focus"`
}

func (r *statsReq) validate() error {
	if r == nil {
		return nil
	}
	if !model.FocusLevel(r.AvgFocus).Valid() {
		return errInvalidFocus
	}
	return nil
}

func (r *statsReq) toStats() *model.SummaryStats {
	if r == nil {
		return nil
	}
	return &model.SummaryStats{
		TotalTasks: r.TotalTasks,
		TotalHours: r.TotalHours,
		AvgFocus:   model.FocusLevel(r.AvgFocus),
	}
}

// generateReq is the body of both the summary create and the legacy
// generate-summary endpoints.
type generateReq struct {
	Tasks            []taskReq              `json:"tasks"      binding:"required"`
	WeekStart        string                 `json:"week_start" binding:"required"`
	WeekEnd          string                 `json:"week_end"   binding:"required"`
	WeekStats        *statsReq              `json:"week_stats"`
	ContextSummaries coach.ContextSummaries `json:"context_summaries"`
}

func (r generateReq) validate() error {
	if len(r.Tasks) == 0 {
		return errNoTasks
	}
	for _, t := range r.Tasks {
		if _, err := task.ValidateName(t.Name); err != nil {
			return err
		}
		if err := task.ValidateTimeSpent(t.TimeSpent); err != nil {
			return err
		}
		if err := task.ValidateFocusLevel(model.FocusLevel(t.FocusLevel)); err != nil {
			return err
		}
		if _, err := task.ValidateDate(t.DateWorked); err != nil {
			return err
		}
	}
	if _, err := task.ValidateDate(r.WeekStart); err != nil {
		return err
	}
	if _, err := task.ValidateDate(r.WeekEnd); err != nil {
		return err
	}
	return r.WeekStats.validate()
}

func (r generateReq) toInput() summary.GenerateInput {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		date, _ := task.ValidateDate(t.DateWorked)
		tasks[i] = model.Task{
			ID:         t.ID,
			Name:       t.Name,
			TimeSpent:  t.TimeSpent,
			FocusLevel: model.FocusLevel(t.FocusLevel),
			DateWorked: date,
		}
	}
	return summary.GenerateInput{
		Tasks:     tasks,
		WeekStart: r.WeekStart,
		WeekEnd:   r.WeekEnd,
		Stats:     r.WeekStats.toStats(),
		Context:   r.ContextSummaries,
	}
}

// ---

type listReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     *int   `form:"limit"`
	Offset    *int   `form:"offset"`
}

func (r listReq) validate() error {
	if r.Limit != nil && (*r.Limit < 1 || *r.Limit > maxLimit) {
		return errInvalidLimit
	}
	if r.Offset != nil && *r.Offset < 0 {
		return errInvalidOffset
	}
	for _, d := range []string{r.StartDate, r.EndDate} {
		if d == "" {
			continue
		}
		if _, err := task.ValidateDate(d); err != nil {
			return err
		}
	}
	return nil
}

func (r listReq) toInput() summary.ListInput {
	input := summary.ListInput{Limit: defaultLimit}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	if r.Offset != nil {
		input.Offset = *r.Offset
	}
	if r.StartDate != "" {
		input.StartDate, _ = task.ValidateDate(r.StartDate)
	}
	if r.EndDate != "" {
		input.EndDate, _ = task.ValidateDate(r.EndDate)
	}
	return input
}

// ---

type searchReq struct {
	Query string `form:"query"`
	Sort  string `form:"sort"`
	Limit *int   `form:"limit"`
}

func (r searchReq) validate() error {
	if r.Limit != nil && (*r.Limit < 1 || *r.Limit > maxLimit) {
		return errInvalidLimit
	}
	if r.Sort != "" && search.SortMode(r.Sort).Normalize() != search.SortMode(r.Sort) {
		return errInvalidSort
	}
	return nil
}

func (r searchReq) toInput() summary.SearchInput {
	input := summary.SearchInput{
		Query: r.Query,
		Sort:  search.SortMode(r.Sort).Normalize(),
		Limit: defaultSearchLimit,
	}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	return input
}

// ---

type updateReq struct {
	ID              uint      `json:"-"`
	WeekEnd         *string   `json:"week_end"`
	Summary         *string   `json:"summary"`
	Recommendations *[]string `json:"recommendations"`
	Stats           *statsReq `json:"stats"`
}

func (r updateReq) validate() error {
	if r.WeekEnd != nil {
		if _, err := task.ValidateDate(*r.WeekEnd); err != nil {
			return err
		}
	}
	return r.Stats.validate()
}

func (r updateReq) toInput() summary.UpdateInput {
	return summary.UpdateInput{
		ID:              r.ID,
		WeekEnd:         r.WeekEnd,
		Summary:         r.Summary,
		Recommendations: r.Recommendations,
		Stats:           r.Stats.toStats(),
	}
}

// --- Response DTOs ---

type statsResp struct {
	TotalTasks int    `json:"total_tasks"`
	TotalHours string `json:"total_hours"`
	AvgFocus   string `json:"avg_focus"`
}

type summaryResp struct {
	ID              uint      `json:"id"`
	WeekStart       string    `json:"week_start"`
	WeekEnd         string    `json:"week_end"`
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations"`
	Stats           statsResp `json:"stats"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newSummaryResp(s model.WeeklySummary) summaryResp {
	recs := s.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return summaryResp{
		ID:              s.ID,
		WeekStart:       s.WeekStart,
		WeekEnd:         s.WeekEnd,
		Summary:         s.Summary,
		Recommendations: recs,
		Stats: statsResp{
			TotalTasks: s.Stats.TotalTasks,
			TotalHours: s.Stats.TotalHours,
			AvgFocus:   string(s.Stats.AvgFocus),
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type listResp struct {
	Summaries []summaryResp `json:"summaries"`
	Total     int64         `json:"total"`
	Limit     int           `json:"limit"`
	Offset    int           `json:"offset"`
	HasMore   bool          `json:"has_more"`
}

func (h *handler) newListResp(out summary.ListOutput) listResp {
	summaries := make([]summaryResp, len(out.Summaries))
	for i, s := range out.Summaries {
		summaries[i] = newSummaryResp(s)
	}
	return listResp{
		Summaries: summaries,
		Total:     out.Total,
		Limit:     out.Limit,
		Offset:    out.Offset,
		HasMore:   out.HasMore,
	}
}

type searchResultResp struct {
	summaryResp
	RelevanceScore             float64  `json:"relevance_score"`
	HighlightedSummary         string   `json:"highlighted_summary"`
	HighlightedRecommendations []string `json:"highlighted_recommendations"`
}

func (h *handler) newSearchResp(out summary.SearchOutput) []searchResultResp {
	results := make([]searchResultResp, len(out.Results))
	for i, r := range out.Results {
		recs := r.HighlightedRecommendations
		if recs == nil {
			recs = []string{}
		}
		results[i] = searchResultResp{
			summaryResp:                newSummaryResp(r.WeeklySummary),
			RelevanceScore:             r.RelevanceScore,
			HighlightedSummary:         r.HighlightedSummary,
			HighlightedRecommendations: recs,
		}
	}
	return results
}

type generateResp struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

type countResp struct {
	TotalSummaries int64 `json:"total_summaries"`
}
