package usecase

import (
	"context"
	"errors"
	"testing"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/task"
	repo "productivity-tracker/internal/task/repository"
	"productivity-tracker/pkg/log"
)

// mockRepo is an in-memory task repository.
type mockRepo struct {
	tasks   map[uint]model.Task
	nextID  uint
	failAll error
	lastOpt repo.ListTasksOptions
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	m := &mockRepo{tasks: map[uint]model.Task{}, nextID: 1}
	for _, t := range tasks {
		m.tasks[t.ID] = t
		if t.ID >= m.nextID {
			m.nextID = t.ID + 1
		}
	}
	return m
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.failAll != nil {
		return model.Task{}, m.failAll
	}
	t := model.Task{ID: m.nextID, Name: opt.Name, TimeSpent: opt.TimeSpent, FocusLevel: opt.FocusLevel, DateWorked: opt.DateWorked}
	m.tasks[t.ID] = t
	m.nextID++
	return t, nil
}

func (m *mockRepo) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	var out []model.Task
	for _, o := range opts {
		t, _ := m.CreateTask(ctx, o)
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.failAll != nil {
		return model.Task{}, m.failAll
	}
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int64, error) {
	m.lastOpt = opt
	if m.failAll != nil {
		return nil, 0, m.failAll
	}
	var all []model.Task
	for id := uint(1); id < m.nextID; id++ {
		if t, ok := m.tasks[id]; ok {
			all = append(all, t)
		}
	}
	total := int64(len(all))
	if opt.Offset < len(all) {
		all = all[opt.Offset:]
	} else {
		all = nil
	}
	if opt.Limit > 0 && len(all) > opt.Limit {
		all = all[:opt.Limit]
	}
	return all, total, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t := model.Task{ID: opt.ID, Name: opt.Name, TimeSpent: opt.TimeSpent, FocusLevel: opt.FocusLevel, DateWorked: opt.DateWorked}
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id uint) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) DeleteAllTasks(ctx context.Context) error {
	m.tasks = map[uint]model.Task{}
	return nil
}

func (m *mockRepo) CountTasks(ctx context.Context) (int64, error) {
	return int64(len(m.tasks)), m.failAll
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
		want    model.Task
	}{
		{
			name:  "Valid task is trimmed and stored",
			input: task.CreateInput{Name: "  Write tests ", TimeSpent: 2.5, FocusLevel: model.FocusHigh, DateWorked: "2024-01-10"},
			want:  model.Task{ID: 1, Name: "Write tests", TimeSpent: 2.5, FocusLevel: model.FocusHigh, DateWorked: "2024-01-10"},
		},
		{
			name:    "Blank name",
			input:   task.CreateInput{Name: "   ", TimeSpent: 1, FocusLevel: model.FocusLow, DateWorked: "2024-01-10"},
			wantErr: task.ErrInvalidName,
		},
		{
			name:    "Too many hours",
			input:   task.CreateInput{Name: "Marathon", TimeSpent: 25, FocusLevel: model.FocusLow, DateWorked: "2024-01-10"},
			wantErr: task.ErrInvalidTimeSpent,
		},
		{
			name:    "Unknown focus",
			input:   task.CreateInput{Name: "Chill", TimeSpent: 1, FocusLevel: "extreme", DateWorked: "2024-01-10"},
			wantErr: task.ErrInvalidFocusLevel,
		},
		{
			name:    "Bad date",
			input:   task.CreateInput{Name: "Chill", TimeSpent: 1, FocusLevel: model.FocusLow, DateWorked: "10/01/2024"},
			wantErr: task.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(newMockRepo(), log.NewNopLogger())
			got, err := uc.Create(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Create = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	r := newMockRepo(
		model.Task{ID: 1, Name: "a", DateWorked: "2024-01-01"},
		model.Task{ID: 2, Name: "b", DateWorked: "2024-01-02"},
		model.Task{ID: 3, Name: "c", DateWorked: "2024-01-03"},
	)
	uc := New(r, log.NewNopLogger())

	out, err := uc.List(context.Background(), task.ListInput{StartDate: "2024-01-01", EndDate: "2024-02-01", Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 2 || out.Total != 3 || !out.HasMore {
		t.Errorf("unexpected page %+v", out)
	}
	if r.lastOpt.StartDate != "2024-01-01" || r.lastOpt.EndDate != "2024-02-01" {
		t.Errorf("date filter not forwarded: %+v", r.lastOpt)
	}

	out, _ = uc.List(context.Background(), task.ListInput{Limit: 2, Offset: 2})
	if len(out.Tasks) != 1 || out.HasMore {
		t.Errorf("unexpected last page %+v", out)
	}
}

func TestDetailUpdateDelete(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo(model.Task{ID: 7, Name: "Review", TimeSpent: 1, FocusLevel: model.FocusMedium, DateWorked: "2024-01-05"})
	uc := New(r, log.NewNopLogger())

	if _, err := uc.Detail(ctx, 8); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail missing = %v", err)
	}

	hours := 3.0
	focus := model.FocusHigh
	updated, err := uc.Update(ctx, task.UpdateInput{ID: 7, TimeSpent: &hours, FocusLevel: &focus})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Review" || updated.TimeSpent != 3 || updated.FocusLevel != model.FocusHigh {
		t.Errorf("partial update lost fields: %+v", updated)
	}

	bad := "  "
	if _, err := uc.Update(ctx, task.UpdateInput{ID: 7, Name: &bad}); !errors.Is(err, task.ErrInvalidName) {
		t.Errorf("Update blank name = %v", err)
	}
	if _, err := uc.Update(ctx, task.UpdateInput{ID: 99, Name: &bad}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Update missing = %v", err)
	}

	if err := uc.Delete(ctx, 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, 7); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second Delete = %v", err)
	}
}

func TestCountAndStats(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo(model.Task{ID: 1, Name: "a"})
	uc := New(r, log.NewNopLogger())

	if n, err := uc.Count(ctx); err != nil || n != 1 {
		t.Errorf("Count = %d, %v", n, err)
	}

	if _, err := uc.CalculateStats(ctx, nil); !errors.Is(err, task.ErrEmptyTasks) {
		t.Errorf("CalculateStats empty = %v", err)
	}
	stats, err := uc.CalculateStats(ctx, []model.Task{
		{Name: "a", TimeSpent: 2, FocusLevel: model.FocusHigh},
		{Name: "b", TimeSpent: 1, FocusLevel: model.FocusLow},
	})
	if err != nil || stats.TotalTasks != 2 || stats.TotalHours != 3 {
		t.Errorf("CalculateStats = %+v, %v", stats, err)
	}

	r.failAll = errors.New("db down")
	if _, err := uc.Count(ctx); err == nil {
		t.Error("expected repository error")
	}
}
