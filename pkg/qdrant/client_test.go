package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"productivity-tracker/pkg/qdrant"
)

type fakeQdrant struct {
	collections map[string]bool
	points      map[string]qdrant.Point
	lastSearch  qdrant.SearchRequest
}

func (f *fakeQdrant) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if r.Header.Get("api-key") != "secret" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "collections" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	name := parts[1]

	switch {
	case len(parts) == 2 && r.Method == http.MethodGet:
		if !f.collections[name] {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":{"error":"Not found: Collection"}}`))
			return
		}
		w.Write([]byte(`{"result":{"status":"green"}}`))

	case len(parts) == 2 && r.Method == http.MethodPut:
		f.collections[name] = true
		w.Write([]byte(`{"result":true}`))

	case len(parts) == 3 && r.Method == http.MethodPut:
		var req qdrant.UpsertPointsRequest
		json.NewDecoder(r.Body).Decode(&req)
		for _, p := range req.Points {
			if p.Payload["cause_500"] == true {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"status":{"error":"boom"}}`))
				return
			}
			f.points[p.ID.(string)] = p
		}
		w.Write([]byte(`{"result":{"status":"completed"}}`))

	case len(parts) == 4 && parts[3] == "search":
		json.NewDecoder(r.Body).Decode(&f.lastSearch)
		w.Write([]byte(`{"result":[{"id":"a","score":0.91,"payload":{"summary_id":1}},{"id":7,"score":0.75,"payload":{"summary_id":2}}]}`))

	case len(parts) == 4 && parts[3] == "delete":
		var req qdrant.DeletePointsRequest
		json.NewDecoder(r.Body).Decode(&req)
		for _, id := range req.Points {
			delete(f.points, id)
		}
		w.Write([]byte(`{"result":{"status":"completed"}}`))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestQdrantClient(t *testing.T) {
	fake := &fakeQdrant{collections: map[string]bool{}, points: map[string]qdrant.Point{}}
	ts := httptest.NewServer(fake)
	defer ts.Close()

	ctx := context.Background()
	client := qdrant.NewClient(ts.URL + "/").WithAPIKey("secret")

	t.Run("EnsureCollection creates once", func(t *testing.T) {
		exists, err := client.CollectionExists(ctx, "summaries")
		if err != nil || exists {
			t.Fatalf("expected missing collection, got exists=%v err=%v", exists, err)
		}
		req := qdrant.CreateCollectionRequest{Name: "summaries", Vectors: qdrant.VectorConfig{Size: 3, Distance: "Cosine"}}
		if err := client.EnsureCollection(ctx, req); err != nil {
			t.Fatalf("EnsureCollection: %v", err)
		}
		if err := client.EnsureCollection(ctx, req); err != nil {
			t.Fatalf("EnsureCollection second call: %v", err)
		}
		if !fake.collections["summaries"] {
			t.Error("collection not created")
		}
	})

	t.Run("UpsertPoints", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "summaries", qdrant.UpsertPointsRequest{Points: []qdrant.Point{
			{ID: "p1", Vector: []float32{0.1, 0.2, 0.3}, Payload: map[string]any{"week_start": "2024-01-07"}},
		}})
		if err != nil {
			t.Fatalf("UpsertPoints: %v", err)
		}
		if _, ok := fake.points["p1"]; !ok {
			t.Error("point not stored")
		}
	})

	t.Run("UpsertPoints error carries message", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "summaries", qdrant.UpsertPointsRequest{Points: []qdrant.Point{
			{ID: "p2", Vector: []float32{1, 0, 0}, Payload: map[string]any{"cause_500": true}},
		}})
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected error with message, got %v", err)
		}
	})

	t.Run("SearchPoints sends threshold", func(t *testing.T) {
		threshold := 0.7
		resp, err := client.SearchPoints(ctx, "summaries", qdrant.SearchRequest{
			Vector:         []float32{0.1, 0.2, 0.3},
			Limit:          5,
			WithPayload:    true,
			ScoreThreshold: &threshold,
		})
		if err != nil {
			t.Fatalf("SearchPoints: %v", err)
		}
		if len(resp.Result) != 2 || resp.Result[0].Score != 0.91 {
			t.Fatalf("unexpected result %+v", resp.Result)
		}
		if fake.lastSearch.ScoreThreshold == nil || *fake.lastSearch.ScoreThreshold != 0.7 {
			t.Errorf("threshold not sent: %+v", fake.lastSearch)
		}
	})

	t.Run("DeletePoints", func(t *testing.T) {
		if err := client.DeletePoints(ctx, "summaries", []string{"p1"}); err != nil {
			t.Fatalf("DeletePoints: %v", err)
		}
		if len(fake.points) != 0 {
			t.Errorf("expected no points, got %d", len(fake.points))
		}
	})

	t.Run("Wrong API key", func(t *testing.T) {
		bad := qdrant.NewClient(ts.URL)
		if _, err := bad.CollectionExists(ctx, "summaries"); err == nil {
			t.Fatal("expected forbidden error")
		}
	})

	t.Run("Context cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := client.DeletePoints(cctx, "summaries", []string{"x"})
		if err == nil || !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context canceled, got %v", err)
		}
	})
}
