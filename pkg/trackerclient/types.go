package trackerclient

import "time"

// Task mirrors the task resource.
type Task struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	TimeSpent  float64   `json:"time_spent"`
	FocusLevel string    `json:"focus_level"`
	DateWorked string    `json:"date_worked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewTask is the body of a task creation.
type NewTask struct {
	Name       string  `json:"name"`
	TimeSpent  float64 `json:"time_spent"`
	FocusLevel string  `json:"focus_level"`
	DateWorked string  `json:"date_worked"`
}

// TaskUpdate changes only the non-nil fields.
type TaskUpdate struct {
	Name       *string  `json:"name,omitempty"`
	TimeSpent  *float64 `json:"time_spent,omitempty"`
	FocusLevel *string  `json:"focus_level,omitempty"`
	DateWorked *string  `json:"date_worked,omitempty"`
}

// ListParams pages a collection. Zero values are omitted from the query.
type ListParams struct {
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

type TaskPage struct {
	Tasks   []Task `json:"tasks"`
	Total   int64  `json:"total"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
	HasMore bool   `json:"has_more"`
}

// SummaryStats is the aggregate stored with a summary. TotalHours keeps one decimal.
type SummaryStats struct {
	TotalTasks int    `json:"total_tasks"`
	TotalHours string `json:"total_hours"`
	AvgFocus   string `json:"avg_focus"`
}

type Summary struct {
	ID              uint         `json:"id"`
	WeekStart       string       `json:"week_start"`
	WeekEnd         string       `json:"week_end"`
	Summary         string       `json:"summary"`
	Recommendations []string     `json:"recommendations"`
	Stats           SummaryStats `json:"stats"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// GenerateRequest asks the server to write and store a weekly summary.
type GenerateRequest struct {
	Tasks     []Task        `json:"tasks"`
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	WeekStats *SummaryStats `json:"week_stats,omitempty"`
}

type SummaryUpdate struct {
	WeekEnd         *string       `json:"week_end,omitempty"`
	Summary         *string       `json:"summary,omitempty"`
	Recommendations *[]string     `json:"recommendations,omitempty"`
	Stats           *SummaryStats `json:"stats,omitempty"`
}

type SummaryPage struct {
	Summaries []Summary `json:"summaries"`
	Total     int64     `json:"total"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
	HasMore   bool      `json:"has_more"`
}

// SearchParams queries summaries. Sort is relevance, date, tasks or hours.
type SearchParams struct {
	Query string
	Sort  string
	Limit int
}

type SearchResult struct {
	Summary
	RelevanceScore             float64  `json:"relevance_score"`
	HighlightedSummary         string   `json:"highlighted_summary"`
	HighlightedRecommendations []string `json:"highlighted_recommendations"`
}

// SearchResponse carries the results and the engine that produced them
// ("vector" or "keyword").
type SearchResponse struct {
	Results []SearchResult
	Mode    string
}

type DayBucket struct {
	Date       string  `json:"date"`
	Label      string  `json:"label"`
	Low        int     `json:"low"`
	Medium     int     `json:"medium"`
	High       int     `json:"high"`
	LowTime    float64 `json:"lowTime"`
	MediumTime float64 `json:"mediumTime"`
	HighTime   float64 `json:"highTime"`
	Tasks      int     `json:"tasks"`
	Hours      float64 `json:"hours"`
}

type HeatmapDay struct {
	Date           string  `json:"date"`
	Day            string  `json:"day"`
	MonthName      *string `json:"monthName"`
	IsFirstOfMonth bool    `json:"isFirstOfMonth"`
	Intensity      float64 `json:"intensity"`
	Tasks          int     `json:"tasks"`
}

// Stats is the headline subset of the server's task statistics.
type Stats struct {
	TotalTasks          int                `json:"total_tasks"`
	CompletedTasks      int                `json:"completed_tasks"`
	CompletionRate      float64            `json:"completion_rate"`
	TotalHours          float64            `json:"total_hours"`
	AverageHoursPerTask float64            `json:"average_hours_per_task"`
	FocusDistribution   map[string]int     `json:"focus_distribution"`
	TimeByFocus         map[string]float64 `json:"time_by_focus"`
	MostProductiveFocus string             `json:"most_productive_focus"`
}

type RangeReport struct {
	Range     string       `json:"range"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Days      int          `json:"days"`
	Daily     []DayBucket  `json:"daily"`
	Heatmap   []HeatmapDay `json:"heatmap"`
	Stats     Stats        `json:"stats"`
	WeekStats SummaryStats `json:"week_stats"`
}

type WeekReport struct {
	WeekStart  string       `json:"week_start"`
	WeekEnd    string       `json:"week_end"`
	WeekNumber int          `json:"week_number"`
	Year       int          `json:"year"`
	Tasks      []Task       `json:"tasks"`
	Stats      SummaryStats `json:"stats"`
	Summary    *Summary     `json:"summary"`
}

type SeedResult struct {
	Message          string `json:"message"`
	TasksCreated     int    `json:"tasks_created"`
	SummariesCreated int    `json:"summaries_created"`
}
