package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"productivity-tracker/pkg/llmprovider"
	"productivity-tracker/pkg/log"
	"productivity-tracker/pkg/metrics"
)

const (
	// SafeFallbackQuery replaces queries that look like prompt injection.
	SafeFallbackQuery = "high focus"

	maxImprovedLength = 100
	minImproveLength  = 3

	defaultCacheSize = 500
	defaultCacheTTL  = 30 * time.Minute
)

// Generator is the subset of the LLM manager the improver needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// QueryImprover rewrites natural-language queries into search keywords.
// Results are cached per raw query.
type QueryImprover struct {
	l     log.Logger
	llm   Generator
	cache *expirable.LRU[string, string]
}

// NewQueryImprover creates a QueryImprover. A nil llm disables rewriting and
// only sanitises queries.
func NewQueryImprover(l log.Logger, llm Generator, cacheSize int, ttl time.Duration) *QueryImprover {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &QueryImprover{
		l:     l,
		llm:   llm,
		cache: expirable.NewLRU[string, string](cacheSize, nil, ttl),
	}
}

// Improve returns search keywords for query. Suspicious queries become
// SafeFallbackQuery; model failures or odd output fall back to the
// sanitised, lower-cased query.
func (q *QueryImprover) Improve(ctx context.Context, query string) string {
	if DetectInjection(query) {
		q.l.Warnf(ctx, "search.Improve: possible prompt injection, using fallback query")
		metrics.RecordQueryGuard("injection")
		return SafeFallbackQuery
	}

	sanitized := Sanitize(query)
	fallback := strings.ToLower(sanitized)
	if len(strings.TrimSpace(sanitized)) < minImproveLength || q.llm == nil {
		return fallback
	}

	if cached, ok := q.cache.Get(sanitized); ok {
		metrics.RecordQueryGuard("cache_hit")
		return cached
	}

	resp, err := q.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{{
			Role:  "user",
			Parts: []llmprovider.Part{{Text: improvementPrompt(sanitized)}},
		}},
		Temperature: 0.2,
		MaxTokens:   50,
	})
	if err != nil {
		q.l.Warnf(ctx, "search.Improve GenerateContent: %v", err)
		metrics.RecordQueryGuard("llm_error")
		return fallback
	}

	improved := strings.Trim(strings.TrimSpace(resp.Text()), `"'`)
	if improved == "" || len(improved) > maxImprovedLength || DetectInjection(improved) {
		metrics.RecordQueryGuard("rejected")
		return fallback
	}

	improved = strings.ToLower(improved)
	q.cache.Add(sanitized, improved)
	metrics.RecordQueryGuard("improved")
	return improved
}

func improvementPrompt(query string) string {
	return fmt.Sprintf(`Convert this natural language search query into optimal keywords for semantic search of productivity summaries.

Rules:
1. Extract only the most relevant keywords and concepts
2. Remove filler words like "show me", "find", "weeks when", etc.
3. Focus on activity types, emotions, outcomes, and productivity concepts
4. Keep it concise (2-5 key words/phrases)
5. Return ONLY the improved search terms, nothing else

Examples:
"Show me weeks when I completed a lot of coding tasks" -> "completed coding tasks"
"Find summaries about times I was stressed" -> "stressed"
"Weeks with high productivity" -> "high productivity focus"

Query: %s

Improved search terms:`, query)
}
