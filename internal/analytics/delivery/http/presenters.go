package http

import (
	"time"

	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/model"
	"productivity-tracker/pkg/datemath"
)

// --- Request DTOs ---

type rangeReq struct {
	Range string `form:"range"`
}

func (r rangeReq) toInput(now time.Time) analytics.RangeReportInput {
	return analytics.RangeReportInput{
		Range: analytics.RangeKeyword(r.Range).Normalize(),
		Now:   now,
	}
}

type weeksReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (r weeksReq) validate() error {
	for _, d := range []string{r.StartDate, r.EndDate} {
		if d == "" {
			continue
		}
		if _, err := datemath.NormalizeDate(d); err != nil {
			return analytics.ErrInvalidDate
		}
	}
	return nil
}

func (r weeksReq) toInput(now time.Time) analytics.WeeksInput {
	return analytics.WeeksInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Now:       now,
	}
}

// --- Response DTOs ---

type rangeResp struct {
	Range     string                 `json:"range"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Days      int                    `json:"days"`
	Daily     []analytics.DayBucket  `json:"daily"`
	Heatmap   []analytics.HeatmapDay `json:"heatmap"`
	Stats     analytics.Stats        `json:"stats"`
	WeekStats model.SummaryStats     `json:"week_stats"`
}

func (h *handler) newRangeResp(out analytics.RangeReportOutput) rangeResp {
	return rangeResp{
		Range:     string(out.Range.Keyword),
		StartDate: h.cal.Format(out.Range.Start),
		EndDate:   h.cal.Format(out.Range.End),
		Days:      out.Range.Days,
		Daily:     out.Daily,
		Heatmap:   out.Heatmap,
		Stats:     out.Stats,
		WeekStats: out.Summary,
	}
}

type weekTaskResp struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	TimeSpent  float64 `json:"time_spent"`
	FocusLevel string  `json:"focus_level"`
	DateWorked string  `json:"date_worked"`
}

type weekResp struct {
	WeekStart  string               `json:"week_start"`
	WeekEnd    string               `json:"week_end"`
	WeekNumber int                  `json:"week_number"`
	Year       int                  `json:"year"`
	Tasks      []weekTaskResp       `json:"tasks"`
	Stats      model.SummaryStats   `json:"stats"`
	Summary    *model.WeeklySummary `json:"summary"`
}

type weeksResp struct {
	Weeks []weekResp `json:"weeks"`
}

func (h *handler) newWeeksResp(out analytics.WeeksOutput) weeksResp {
	weeks := make([]weekResp, len(out.Weeks))
	for i, w := range out.Weeks {
		tasks := make([]weekTaskResp, len(w.Tasks))
		for j, t := range w.Tasks {
			tasks[j] = weekTaskResp{
				ID:         t.ID,
				Name:       t.Name,
				TimeSpent:  t.TimeSpent,
				FocusLevel: string(t.FocusLevel),
				DateWorked: t.DateWorked,
			}
		}
		weeks[i] = weekResp{
			WeekStart:  w.Week.WeekStart,
			WeekEnd:    w.Week.WeekEnd,
			WeekNumber: w.Week.Number,
			Year:       w.Week.Year,
			Tasks:      tasks,
			Stats:      w.Stats,
			Summary:    w.Summary,
		}
	}
	return weeksResp{Weeks: weeks}
}
