package qdrant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/search"
	"productivity-tracker/internal/summary/repository"
	pkgQdrant "productivity-tracker/pkg/qdrant"
)

// pointNamespace scopes the deterministic point ids of weekly summaries.
var pointNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

// EnsureCollection creates the summaries collection unless it exists.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	err := r.client.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: distanceCosine},
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to ensure collection %s: %v", r.collectionName, err)
		return fmt.Errorf("ensure collection: %w", err)
	}
	return nil
}

// EmbedSummary generates the embedding of s and stores it under a point id
// derived from its week, so regenerating a week overwrites its vector.
func (r *implRepository) EmbedSummary(ctx context.Context, s model.WeeklySummary) error {
	vector, err := r.embed(ctx, EmbeddingText(s))
	if err != nil {
		return err
	}

	point := pkgQdrant.Point{
		ID:     WeekPointID(s.WeekStart),
		Vector: vector,
		Payload: map[string]any{
			"summary_id": s.ID,
			"week_start": s.WeekStart,
			"week_end":   s.WeekEnd,
		},
	}
	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: []pkgQdrant.Point{point}}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert point: %v", err)
		return repository.ErrFailedToEmbed
	}

	r.l.Debugf(ctx, "qdrant repository: embedded summary %d (week %s)", s.ID, s.WeekStart)
	return nil
}

// SearchSummaries embeds the query and returns the closest summaries.
func (r *implRepository) SearchSummaries(ctx context.Context, opt repository.SearchVectorsOptions) ([]repository.VectorMatch, error) {
	vector, err := r.embed(ctx, search.NormalizeForEmbedding(opt.Query))
	if err != nil {
		return nil, err
	}

	req := pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       opt.Limit,
		WithPayload: true,
	}
	if opt.Threshold > 0 {
		threshold := opt.Threshold
		req.ScoreThreshold = &threshold
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, repository.ErrFailedToSearch
	}

	matches := make([]repository.VectorMatch, 0, len(resp.Result))
	for _, scored := range resp.Result {
		if scored.Score < opt.Threshold {
			continue
		}
		id, ok := payloadID(scored.Payload["summary_id"])
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: summary_id missing in payload for point %v", scored.ID)
			continue
		}
		weekStart, _ := scored.Payload["week_start"].(string)
		matches = append(matches, repository.VectorMatch{
			SummaryID: id,
			WeekStart: weekStart,
			Score:     scored.Score,
		})
	}
	return matches, nil
}

// DeleteSummary removes the vector of s.
func (r *implRepository) DeleteSummary(ctx context.Context, s model.WeeklySummary) error {
	if err := r.client.DeletePoints(ctx, r.collectionName, []string{WeekPointID(s.WeekStart)}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to delete point: %v", err)
		return repository.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := r.embedder.Embed(ctx, []string{text})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embedding: %v", err)
		return nil, repository.ErrFailedToEmbed
	}
	return vectors[0], nil
}

// WeekPointID maps a week to its Qdrant point id (UUID v5).
func WeekPointID(weekStart string) string {
	return uuid.NewSHA1(pointNamespace, []byte(weekStart)).String()
}

// EmbeddingText is the text whose embedding represents a summary.
func EmbeddingText(s model.WeeklySummary) string {
	text := fmt.Sprintf("Week %s to %s\nSummary: %s\nRecommendations: %s",
		s.WeekStart, s.WeekEnd, s.Summary, strings.Join(s.Recommendations, "; "))
	return search.NormalizeForEmbedding(search.StripTags(text))
}

// payloadID reads a numeric payload value decoded from JSON.
func payloadID(v any) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n <= 0 {
			return 0, false
		}
		return uint(n), true
	case int:
		if n <= 0 {
			return 0, false
		}
		return uint(n), true
	case uint:
		return n, n > 0
	}
	return 0, false
}
