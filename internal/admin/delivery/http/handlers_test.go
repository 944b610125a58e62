package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"productivity-tracker/internal/admin"
	"productivity-tracker/pkg/log"
)

type mockUseCase struct {
	out admin.SeedOutput
	err error
}

func (m *mockUseCase) Seed(ctx context.Context, input admin.SeedInput) (admin.SeedOutput, error) {
	return m.out, m.err
}

func setupRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNopLogger(), uc))
	return r
}

func TestGenerateSampleData(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockUseCase
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Success",
			uc:         &mockUseCase{out: admin.SeedOutput{TasksCreated: 180, SummariesCreated: 9}},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Sample data generated successfully","tasks_created":180,"summaries_created":9}`,
		},
		{
			name:       "Failure",
			uc:         &mockUseCase{err: fmt.Errorf("%w: disk full", admin.ErrSeedFailed)},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error_code":500,"message":"Failed to generate sample data"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			setupRouter(tt.uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/generate-sample-data", nil))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var got, want map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_ = json.Unmarshal([]byte(tt.wantBody), &want)
			if fmt.Sprint(got) != fmt.Sprint(want) {
				t.Errorf("body = %v, want %v", got, want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(&mockUseCase{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"healthy"}` {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}
