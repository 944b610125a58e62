package model

import (
	"strconv"
	"time"
)

// SummaryStats is the aggregate attached to a weekly summary.
// TotalHours is rendered with one decimal, e.g. "12.5".
type SummaryStats struct {
	TotalTasks int        `json:"total_tasks"`
	TotalHours string     `json:"total_hours"`
	AvgFocus   FocusLevel `json:"avg_focus"`
}

// Hours returns TotalHours as a number, 0 when it does not parse.
func (s SummaryStats) Hours() float64 {
	h, err := strconv.ParseFloat(s.TotalHours, 64)
	if err != nil {
		return 0
	}
	return h
}

// WeeklySummary is an AI-written report for one Sunday-to-Saturday week.
// WeekStart is the canonical identity of the week.
type WeeklySummary struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	WeekStart       string       `gorm:"size:10;not null;uniqueIndex" json:"week_start"`
	WeekEnd         string       `gorm:"size:10;not null" json:"week_end"`
	Summary         string       `gorm:"type:text" json:"summary"`
	Recommendations []string     `gorm:"type:text;serializer:json" json:"recommendations"`
	Stats           SummaryStats `gorm:"type:text;serializer:json" json:"stats"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TableName pins the gorm table name.
func (WeeklySummary) TableName() string { return "weekly_summaries" }
