package task

import "productivity-tracker/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name       string
	TimeSpent  float64
	FocusLevel model.FocusLevel
	DateWorked string
}

// ListInput filters by DateWorked in the half-open range [StartDate, EndDate).
// Empty bounds are open.
type ListInput struct {
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID         uint
	Name       *string
	TimeSpent  *float64
	FocusLevel *model.FocusLevel
	DateWorked *string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks   []model.Task
	Total   int64
	Limit   int
	Offset  int
	HasMore bool
}
