// Package trackerclient is a Go client for the productivity tracker REST API.
package trackerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:8000/api"

	searchModeHeader = "X-Search-Mode"
	defaultTimeout   = 30 * time.Second
)

// Client calls the tracker API. It does not retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL, which includes the API prefix,
// e.g. "http://localhost:8000/api".
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// --- Tasks ---

func (c *Client) ListTasks(ctx context.Context, p ListParams) (TaskPage, error) {
	var out TaskPage
	_, err := c.do(ctx, http.MethodGet, "/tasks/"+p.query(), nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, t NewTask) (Task, error) {
	var out Task
	_, err := c.do(ctx, http.MethodPost, "/tasks/", t, &out)
	return out, err
}

func (c *Client) GetTask(ctx context.Context, id uint) (Task, error) {
	var out Task
	_, err := c.do(ctx, http.MethodGet, "/tasks/"+idPath(id), nil, &out)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, id uint, u TaskUpdate) (Task, error) {
	var out Task
	_, err := c.do(ctx, http.MethodPut, "/tasks/"+idPath(id), u, &out)
	return out, err
}

func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+idPath(id), nil, nil)
	return err
}

func (c *Client) CountTasks(ctx context.Context) (int64, error) {
	var out struct {
		TotalTasks int64 `json:"total_tasks"`
	}
	_, err := c.do(ctx, http.MethodGet, "/tasks/stats/count", nil, &out)
	return out.TotalTasks, err
}

// CalculateStats asks the server to aggregate an arbitrary set of tasks.
func (c *Client) CalculateStats(ctx context.Context, tasks []NewTask) (Stats, error) {
	var out Stats
	_, err := c.do(ctx, http.MethodPost, "/tasks/stats/calculate", tasks, &out)
	return out, err
}

// --- Summaries ---

func (c *Client) ListSummaries(ctx context.Context, p ListParams) (SummaryPage, error) {
	var out SummaryPage
	_, err := c.do(ctx, http.MethodGet, "/summaries/"+p.query(), nil, &out)
	return out, err
}

// GenerateSummary writes and stores the summary of a week. The server
// replaces any summary already stored for the same week.
func (c *Client) GenerateSummary(ctx context.Context, req GenerateRequest) (Summary, error) {
	var out Summary
	_, err := c.do(ctx, http.MethodPost, "/summaries/", req, &out)
	return out, err
}

func (c *Client) GetSummary(ctx context.Context, id uint) (Summary, error) {
	var out Summary
	_, err := c.do(ctx, http.MethodGet, "/summaries/"+idPath(id), nil, &out)
	return out, err
}

func (c *Client) UpdateSummary(ctx context.Context, id uint, u SummaryUpdate) (Summary, error) {
	var out Summary
	_, err := c.do(ctx, http.MethodPut, "/summaries/"+idPath(id), u, &out)
	return out, err
}

func (c *Client) DeleteSummary(ctx context.Context, id uint) error {
	_, err := c.do(ctx, http.MethodDelete, "/summaries/"+idPath(id), nil, nil)
	return err
}

func (c *Client) CountSummaries(ctx context.Context) (int64, error) {
	var out struct {
		TotalSummaries int64 `json:"total_summaries"`
	}
	_, err := c.do(ctx, http.MethodGet, "/summaries/stats/count", nil, &out)
	return out.TotalSummaries, err
}

// SearchSummaries runs a server-side search. A blank query returns no
// results without calling the server.
func (c *Client) SearchSummaries(ctx context.Context, p SearchParams) (SearchResponse, error) {
	if strings.TrimSpace(p.Query) == "" {
		return SearchResponse{Results: []SearchResult{}}, nil
	}

	q := url.Values{}
	q.Set("query", p.Query)
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	var results []SearchResult
	header, err := c.do(ctx, http.MethodGet, "/summaries/search?"+q.Encode(), nil, &results)
	if err != nil {
		return SearchResponse{}, err
	}
	if results == nil {
		results = []SearchResult{}
	}
	return SearchResponse{Results: results, Mode: header.Get(searchModeHeader)}, nil
}

// --- Analytics ---

// AnalyticsRange fetches the chart, heatmap and statistics for a range
// keyword (week, month, quarter or all).
func (c *Client) AnalyticsRange(ctx context.Context, rangeKey string) (RangeReport, error) {
	var out RangeReport
	path := "/analytics/range"
	if rangeKey != "" {
		path += "?range=" + url.QueryEscape(rangeKey)
	}
	_, err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// AnalyticsWeeks fetches per-week reports, newest first.
func (c *Client) AnalyticsWeeks(ctx context.Context, startDate, endDate string) ([]WeekReport, error) {
	var out struct {
		Weeks []WeekReport `json:"weeks"`
	}
	p := ListParams{StartDate: startDate, EndDate: endDate}
	_, err := c.do(ctx, http.MethodGet, "/analytics/weeks"+p.query(), nil, &out)
	return out.Weeks, err
}

// --- Admin ---

// GenerateSampleData replaces all stored data with generated samples.
func (c *Client) GenerateSampleData(ctx context.Context) (SeedResult, error) {
	var out SeedResult
	_, err := c.do(ctx, http.MethodPost, "/admin/generate-sample-data", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) (http.Header, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call tracker API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp errorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil {
			apiErr.Message = errResp.Message
		}
		return resp.Header, apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.Header, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.Header, nil
}

func (p ListParams) query() string {
	q := url.Values{}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func idPath(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
