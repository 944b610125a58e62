package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/model"
	summaryRepo "productivity-tracker/internal/summary/repository"
	taskRepo "productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

type mockTasks struct {
	taskRepo.Repository
	tasks   []model.Task
	err     error
	lastOpt taskRepo.ListTasksOptions
}

func (m *mockTasks) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, int64, error) {
	m.lastOpt = opt
	return m.tasks, int64(len(m.tasks)), m.err
}

type mockSummaries struct {
	summaryRepo.Repository
	summaries []model.WeeklySummary
	lastOpt   summaryRepo.ListSummariesOptions
}

func (m *mockSummaries) ListSummaries(ctx context.Context, opt summaryRepo.ListSummariesOptions) ([]model.WeeklySummary, int64, error) {
	m.lastOpt = opt
	return m.summaries, int64(len(m.summaries)), nil
}

var now = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(tasks *mockTasks, summaries *mockSummaries) *implUseCase {
	bucketer := analytics.NewBucketer(datemath.NewWithLocation(time.UTC))
	return New(log.NewNopLogger(), bucketer, tasks, summaries)
}

func TestRangeReport(t *testing.T) {
	tasks := &mockTasks{tasks: []model.Task{
		{ID: 1, Name: "API", TimeSpent: 2, FocusLevel: model.FocusHigh, DateWorked: "2024-01-08"},
		{ID: 2, Name: "Email", TimeSpent: 1, FocusLevel: model.FocusLow, DateWorked: "2024-01-09"},
		{ID: 3, Name: "Old", TimeSpent: 4, FocusLevel: model.FocusLow, DateWorked: "2024-01-02"},
	}}
	uc := newUseCase(tasks, &mockSummaries{})

	out, err := uc.RangeReport(context.Background(), analytics.RangeReportInput{Range: analytics.RangeWeek, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks.lastOpt.StartDate != "2023-07-09" {
		t.Errorf("expected tasks loaded from 2023-07-09, got %+v", tasks.lastOpt)
	}
	if out.Range.Days != 7 || len(out.Daily) != 7 || len(out.Heatmap) != 7 {
		t.Errorf("unexpected window: days=%d daily=%d heatmap=%d", out.Range.Days, len(out.Daily), len(out.Heatmap))
	}
	if len(out.Tasks) != 2 || out.Stats.TotalTasks != 2 || out.Summary.TotalHours != "3.0" {
		t.Errorf("unexpected aggregates: tasks=%d stats=%+v summary=%+v", len(out.Tasks), out.Stats, out.Summary)
	}

	t.Run("Repository failure", func(t *testing.T) {
		uc := newUseCase(&mockTasks{err: errors.New("db down")}, &mockSummaries{})
		if _, err := uc.RangeReport(context.Background(), analytics.RangeReportInput{Now: now}); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestWeeks(t *testing.T) {
	tasks := &mockTasks{tasks: []model.Task{
		{ID: 1, TimeSpent: 2, FocusLevel: model.FocusHigh, DateWorked: "2024-01-08"},
		{ID: 2, TimeSpent: 1.5, FocusLevel: model.FocusHigh, DateWorked: "2024-01-09"},
	}}
	summaries := &mockSummaries{summaries: []model.WeeklySummary{
		{ID: 5, WeekStart: "2023-12-31", WeekEnd: "2024-01-06", Summary: "Quiet week."},
	}}
	uc := newUseCase(tasks, summaries)

	out, err := uc.Weeks(context.Background(), analytics.WeeksInput{StartDate: "2024-01-01", EndDate: "2024-01-10", Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(out.Weeks))
	}
	current, previous := out.Weeks[0], out.Weeks[1]
	if current.Week.WeekStart != "2024-01-07" || previous.Week.WeekStart != "2023-12-31" {
		t.Errorf("unexpected weeks %s, %s", current.Week.WeekStart, previous.Week.WeekStart)
	}
	if tasks.lastOpt.StartDate != "2023-12-31" || tasks.lastOpt.EndDate != "2024-01-14" {
		t.Errorf("unexpected task filter %+v", tasks.lastOpt)
	}
	if summaries.lastOpt.StartDate != "2023-12-31" || summaries.lastOpt.EndDate != "2024-01-07" {
		t.Errorf("unexpected summary filter %+v", summaries.lastOpt)
	}
	if current.Stats.TotalTasks != 2 || current.Stats.AvgFocus != model.FocusHigh || current.Summary != nil {
		t.Errorf("unexpected current week %+v", current)
	}
	if previous.Tasks == nil || len(previous.Tasks) != 0 || previous.Stats.TotalHours != "0.0" {
		t.Errorf("unexpected previous week %+v", previous)
	}
	if previous.Summary == nil || previous.Summary.ID != 5 {
		t.Errorf("expected the stored summary keyed by week_start, got %+v", previous.Summary)
	}
}

func TestWeeksBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     analytics.WeeksInput
		wantErr   error
		wantWeeks int
	}{
		{name: "Default window", input: analytics.WeeksInput{Now: now}, wantWeeks: 26},
		{name: "Bad start", input: analytics.WeeksInput{StartDate: "first of jan", Now: now}, wantErr: analytics.ErrInvalidDate},
		{name: "Bad end", input: analytics.WeeksInput{EndDate: "2024/01/10", Now: now}, wantErr: analytics.ErrInvalidDate},
		{name: "Inverted", input: analytics.WeeksInput{StartDate: "2024-01-10", EndDate: "2024-01-01", Now: now}, wantErr: analytics.ErrInvalidRange},
		{name: "Future window", input: analytics.WeeksInput{StartDate: "2024-03-03", EndDate: "2024-03-09", Now: now}, wantWeeks: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&mockTasks{}, &mockSummaries{})
			out, err := uc.Weeks(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err == nil && len(out.Weeks) != tt.wantWeeks {
				t.Errorf("expected %d weeks, got %d", tt.wantWeeks, len(out.Weeks))
			}
		})
	}
}
