package repository

import "productivity-tracker/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Name       string
	TimeSpent  float64
	FocusLevel model.FocusLevel
	DateWorked string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID uint
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// The date filter is half-open: StartDate <= date_worked < EndDate.
// Limit <= 0 returns every matching row.
type ListTasksOptions struct {
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions holds the full set of values to store for a Task.
type UpdateTaskOptions struct {
	ID         uint
	Name       string
	TimeSpent  float64
	FocusLevel model.FocusLevel
	DateWorked string
}
