package analytics

import (
	"time"

	"productivity-tracker/internal/model"
)

// RangeKeyword selects a reporting window.
type RangeKeyword string

const (
	RangeWeek    RangeKeyword = "week"
	RangeMonth   RangeKeyword = "month"
	RangeQuarter RangeKeyword = "quarter"
	RangeAll     RangeKeyword = "all"
)

// Normalize maps unknown keywords to week.
func (k RangeKeyword) Normalize() RangeKeyword {
	switch k {
	case RangeWeek, RangeMonth, RangeQuarter, RangeAll:
		return k
	}
	return RangeWeek
}

// Range is a resolved [Start, End] window. Start is midnight of its first day,
// End the last nanosecond of its last day, Days the inclusive day count.
type Range struct {
	Keyword RangeKeyword
	Start   time.Time
	End     time.Time
	Days    int
}

// DayBucket aggregates one day of tasks for the bar charts.
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

// HeatmapDay aggregates one day of tasks for the heatmap.
// MonthName is set only on the first day of a month.
type HeatmapDay struct {
	Date           string  `json:"date"`
	Day            string  `json:"day"`
	MonthName      *string `json:"monthName"`
	IsFirstOfMonth bool    `json:"isFirstOfMonth"`
	Intensity      float64 `json:"intensity"`
	Tasks          int     `json:"tasks"`
}

// FocusStat is the per-focus breakdown of a task set.
type FocusStat struct {
	Tasks    int     `json:"tasks"`
	Hours    float64 `json:"hours"`
	AvgHours float64 `json:"avg_hours"`
}

// Stats is the productivity analysis of a task set.
type Stats struct {
	TotalTasks                   int                            `json:"total_tasks"`
	CompletedTasks               int                            `json:"completed_tasks"`
	CompletionRate               float64                        `json:"completion_rate"`
	TotalHours                   float64                        `json:"total_hours"`
	AverageHoursPerTask          float64                        `json:"average_hours_per_task"`
	FocusDistribution            map[model.FocusLevel]int       `json:"focus_distribution"`
	FocusDistributionPercentages map[model.FocusLevel]float64   `json:"focus_distribution_percentages"`
	TimeByFocus                  map[model.FocusLevel]float64   `json:"time_by_focus"`
	MostProductiveFocus          string                         `json:"most_productive_focus"`
	FocusStats                   map[model.FocusLevel]FocusStat `json:"focus_stats"`
}

// Week is one Sunday-to-Saturday window. WeekStart is the canonical key
// used to match summaries; Number and Year are display data only.
type Week struct {
	Start     time.Time
	End       time.Time
	WeekStart string
	WeekEnd   string
	Number    int
	Year      int
}

// --- UseCase Inputs ---

type RangeReportInput struct {
	Range RangeKeyword
	Now   time.Time
}

type WeeksInput struct {
	StartDate string
	EndDate   string
	Now       time.Time
}

// --- UseCase Outputs ---

type RangeReportOutput struct {
	Range   Range
	Tasks   []model.Task
	Daily   []DayBucket
	Heatmap []HeatmapDay
	Stats   Stats
	Summary model.SummaryStats
}

type WeekReport struct {
	Week    Week
	Tasks   []model.Task
	Stats   model.SummaryStats
	Summary *model.WeeklySummary
}

type WeeksOutput struct {
	Weeks []WeekReport
}
