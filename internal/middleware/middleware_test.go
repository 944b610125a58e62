package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"productivity-tracker/config"
	"productivity-tracker/pkg/log"
)

func newRouter(m Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func get(r *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNopLogger(), config.CORSConfig{}, config.RateLimitConfig{})
	r := newRouter(m, m.RequestID())

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "Generated when absent"},
		{name: "Propagated from caller", incoming: "abc-123", wantSame: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.incoming != "" {
				h.Set(RequestIDHeader, tt.incoming)
			}
			w := get(r, h)

			got := w.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatal("missing request id header")
			}
			if w.Body.String() != got {
				t.Errorf("context id = %q, header id = %q", w.Body.String(), got)
			}
			if tt.wantSame && got != tt.incoming {
				t.Errorf("id = %q, want %q", got, tt.incoming)
			}
			if !tt.wantSame && len(got) != 36 {
				t.Errorf("expected a uuid, got %q", got)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("Rejects after burst", func(t *testing.T) {
		m := New(log.NewNopLogger(), config.CORSConfig{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
		r := newRouter(m, m.RateLimit())

		if w := get(r, nil); w.Code != http.StatusOK {
			t.Fatalf("first request status = %d", w.Code)
		}
		w := get(r, nil)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("second request status = %d, want 429", w.Code)
		}
		if w.Body.String() != `{"error_code":429,"message":"Too many requests"}` {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		m := New(log.NewNopLogger(), config.CORSConfig{}, config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})
		r := newRouter(m, m.RateLimit())
		for i := 0; i < 5; i++ {
			if w := get(r, nil); w.Code != http.StatusOK {
				t.Fatalf("request %d status = %d", i, w.Code)
			}
		}
	})
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	// 60 req/min gives a burst of 6 and refills one token per second.
	rl := newRateLimiter(60)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 6 {
		t.Errorf("allowed = %d, want burst of 6", got)
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("tracked clients = %d, want 1", rl.limiters.Len())
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "Allowed origin", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", wantHeader: "http://localhost:3000"},
		{name: "Unknown origin", origins: []string{"http://localhost:3000"}, origin: "http://evil.example"},
		{name: "Wildcard", origins: []string{"*"}, origin: "http://any.example", wantHeader: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(log.NewNopLogger(), config.CORSConfig{AllowedOrigins: tt.origins}, config.RateLimitConfig{})
			r := newRouter(m, m.CORS())

			h := http.Header{}
			h.Set("Origin", tt.origin)
			w := get(r, h)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestLoggerAndMetricsPassThrough(t *testing.T) {
	m := New(log.NewNopLogger(), config.CORSConfig{}, config.RateLimitConfig{})
	r := newRouter(m, m.RequestID(), m.Logger(), m.Metrics())
	if w := get(r, nil); w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
