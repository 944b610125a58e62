package http

import (
	"errors"
	"time"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/task"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

var (
	errInvalidLimit  = errors.New("limit must be between 1 and 100")
	errInvalidOffset = errors.New("offset must be greater than or equal to 0")
	errInvalidID     = errors.New("id must be a positive integer")
)

// --- Request DTOs ---

type createReq struct {
	Name       string   `json:"name"        binding:"required"`
	TimeSpent  *float64 `json:"time_spent"  binding:"required"`
	FocusLevel string   `json:"focus_level" binding:"required"`
	DateWorked string   `json:"date_worked" binding:"required"`
}

func (r createReq) validate() error {
	if _, err := task.ValidateName(r.Name); err != nil {
		return err
	}
	if err := task.ValidateTimeSpent(*r.TimeSpent); err != nil {
		return err
	}
	if err := task.ValidateFocusLevel(model.FocusLevel(r.FocusLevel)); err != nil {
		return err
	}
	_, err := task.ValidateDate(r.DateWorked)
	return err
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Name:       r.Name,
		TimeSpent:  *r.TimeSpent,
		FocusLevel: model.FocusLevel(r.FocusLevel),
		DateWorked: r.DateWorked,
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
	if r.StartDate != "" {
		if _, err := task.ValidateDate(r.StartDate); err != nil {
			return err
		}
	}
	if r.EndDate != "" {
		if _, err := task.ValidateDate(r.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	input := task.ListInput{Limit: defaultLimit}
	if r.Limit != nil {
		input.Limit = *r.Limit
	}
	if r.Offset != nil {
		input.Offset = *r.Offset
	}
	// Already validated, so normalisation cannot fail here.
	input.StartDate, _ = normalizeOptionalDate(r.StartDate)
	input.EndDate, _ = normalizeOptionalDate(r.EndDate)
	return input
}

func normalizeOptionalDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return task.ValidateDate(s)
}

// ---

type updateReq struct {
	ID         uint     `json:"-"`
	Name       *string  `json:"name"`
	TimeSpent  *float64 `json:"time_spent"`
	FocusLevel *string  `json:"focus_level"`
	DateWorked *string  `json:"date_worked"`
}

func (r updateReq) validate() error {
	if r.Name != nil {
		if _, err := task.ValidateName(*r.Name); err != nil {
			return err
		}
	}
	if r.TimeSpent != nil {
		if err := task.ValidateTimeSpent(*r.TimeSpent); err != nil {
			return err
		}
	}
	if r.FocusLevel != nil {
		if err := task.ValidateFocusLevel(model.FocusLevel(*r.FocusLevel)); err != nil {
			return err
		}
	}
	if r.DateWorked != nil {
		if _, err := task.ValidateDate(*r.DateWorked); err != nil {
			return err
		}
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:         r.ID,
		Name:       r.Name,
		TimeSpent:  r.TimeSpent,
		DateWorked: r.DateWorked,
	}
	if r.FocusLevel != nil {
		level := model.FocusLevel(*r.FocusLevel)
		input.FocusLevel = &level
	}
	return input
}

// ---

// statsTaskReq is one element of the calculate-stats body. Stats are computed
// over whatever the caller sends, so only the shape is checked.
type statsTaskReq struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	TimeSpent  float64 `json:"time_spent"`
	FocusLevel string  `json:"focus_level"`
	DateWorked string  `json:"date_worked"`
}

func toTasks(reqs []statsTaskReq) []model.Task {
	tasks := make([]model.Task, len(reqs))
	for i, r := range reqs {
		tasks[i] = model.Task{
			ID:         r.ID,
			Name:       r.Name,
			TimeSpent:  r.TimeSpent,
			FocusLevel: model.FocusLevel(r.FocusLevel),
			DateWorked: r.DateWorked,
		}
	}
	return tasks
}

// --- Response DTOs ---

type taskResp struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	TimeSpent  float64   `json:"time_spent"`
	FocusLevel string    `json:"focus_level"`
	DateWorked string    `json:"date_worked"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:         t.ID,
		Name:       t.Name,
		TimeSpent:  t.TimeSpent,
		FocusLevel: string(t.FocusLevel),
		DateWorked: t.DateWorked,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type listResp struct {
	Tasks   []taskResp `json:"tasks"`
	Total   int64      `json:"total"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	HasMore bool       `json:"has_more"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:   tasks,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
		HasMore: out.HasMore,
	}
}

type countResp struct {
	TotalTasks int64 `json:"total_tasks"`
}
