// Package metrics provides Prometheus collectors for the tracker service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP metrics
var (
	// httpRequestsTotal counts handled requests.
	// Labels: method, route (gin full path), status code.
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// AI metrics
var (
	// llmRequestsTotal counts provider calls.
	// Labels: provider, status ("success", "failed").
	llmRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_llm_requests_total",
			Help: "Total number of LLM provider calls",
		},
		[]string{"provider", "status"},
	)

	llmTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_llm_tokens_total",
			Help: "Total number of tokens consumed",
		},
		[]string{"provider", "direction"},
	)

	// summaryGenerationsTotal labels: trigger ("api", "scheduler", "seed"), status.
	summaryGenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_summary_generations_total",
			Help: "Total number of weekly summary generations",
		},
		[]string{"trigger", "status"},
	)
)

// Search metrics
var (
	// searchRequestsTotal labels: mode ("vector", "keyword", "empty").
	searchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_search_requests_total",
			Help: "Total number of summary searches by execution path",
		},
		[]string{"mode"},
	)

	// queryGuardTotal labels: outcome ("injection", "improved", "cache_hit", "rejected", "llm_error").
	queryGuardTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_search_query_guard_total",
			Help: "Outcomes of search query sanitisation and improvement",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(rateLimitedTotal)
	prometheus.MustRegister(llmRequestsTotal)
	prometheus.MustRegister(llmTokensTotal)
	prometheus.MustRegister(summaryGenerationsTotal)
	prometheus.MustRegister(searchRequestsTotal)
	prometheus.MustRegister(queryGuardTotal)
}

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(method, route string, status int, durationSeconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordRateLimited records a request rejected with 429.
func RecordRateLimited() {
	rateLimitedTotal.Inc()
}

// RecordLLMRequest records a provider call outcome.
func RecordLLMRequest(provider, status string) {
	llmRequestsTotal.WithLabelValues(provider, status).Inc()
}

// RecordLLMTokens adds token usage for provider.
func RecordLLMTokens(provider string, input, output int) {
	llmTokensTotal.WithLabelValues(provider, "input").Add(float64(input))
	llmTokensTotal.WithLabelValues(provider, "output").Add(float64(output))
}

// RecordSummaryGeneration records a summary generation attempt.
func RecordSummaryGeneration(trigger, status string) {
	summaryGenerationsTotal.WithLabelValues(trigger, status).Inc()
}

// RecordSearch records which path served a search.
func RecordSearch(mode string) {
	searchRequestsTotal.WithLabelValues(mode).Inc()
}

// RecordQueryGuard records the outcome of query improvement.
func RecordQueryGuard(outcome string) {
	queryGuardTotal.WithLabelValues(outcome).Inc()
}
