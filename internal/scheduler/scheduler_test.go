package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/summary"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

type mockGenerator struct {
	weeks []string
	err   error
}

func (m *mockGenerator) GenerateForWeek(ctx context.Context, weekStart string) (model.WeeklySummary, error) {
	m.weeks = append(m.weeks, weekStart)
	if m.err != nil {
		return model.WeeklySummary{}, m.err
	}
	return model.WeeklySummary{ID: 7, WeekStart: weekStart}, nil
}

func newTestScheduler(t *testing.T, gen WeekGenerator, now time.Time) *Scheduler {
	t.Helper()
	s, err := New(log.NewNopLogger(), gen, datemath.NewWithLocation(time.UTC), Config{WeeklySummarySpec: "0 0 6 * * 1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.now = func() time.Time { return now }
	return s
}

func TestPreviousWeekStart(t *testing.T) {
	s := newTestScheduler(t, &mockGenerator{}, time.Time{})

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "Monday morning", now: time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC), want: "2024-01-07"},
		{name: "Sunday", now: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), want: "2024-01-07"},
		{name: "Saturday night", now: time.Date(2024, 1, 13, 23, 59, 0, 0, time.UTC), want: "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.PreviousWeekStart(tt.now); got != tt.want {
				t.Errorf("PreviousWeekStart() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGeneratePreviousWeek(t *testing.T) {
	now := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "Generated"},
		{name: "Empty week is skipped", err: summary.ErrEmptyTasks},
		{name: "Generation failure", err: summary.ErrGenerationFailed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{err: tt.err}
			s := newTestScheduler(t, gen, now)

			err := s.generatePreviousWeek(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want wrapping %v", err, tt.err)
			}
			if len(gen.weeks) != 1 || gen.weeks[0] != "2024-01-07" {
				t.Errorf("weeks = %v", gen.weeks)
			}
		})
	}
}

func TestNewRejectsBadSpec(t *testing.T) {
	if _, err := New(log.NewNopLogger(), &mockGenerator{}, nil, Config{WeeklySummarySpec: "every monday"}); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestStartStop(t *testing.T) {
	s := newTestScheduler(t, &mockGenerator{}, time.Now())
	s.Start()
	if n := len(s.cron.Entries()); n != 1 {
		t.Errorf("entries = %d, want 1", n)
	}
	s.Stop()
}
