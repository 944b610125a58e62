package trackerclient

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceDelay is the quiet period used for search-as-you-type.
const DefaultDebounceDelay = 300 * time.Millisecond

// Debouncer delays fn until calls stop for the configured delay. Every Call
// restarts the timer, so only the last argument of a burst is delivered.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a Debouncer. A non-positive delay means DefaultDebounceDelay.
func NewDebouncer[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Call schedules fn(arg), cancelling any call still waiting.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(arg) })
}

// Stop cancels the pending call. It reports whether one was cancelled.
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// DebouncedSearch returns a Debouncer that runs SearchSummaries for the last
// query typed within the quiet period and hands the outcome to onResult.
// Responses are delivered in completion order; a slow earlier search may
// arrive after a later one.
func (c *Client) DebouncedSearch(ctx context.Context, delay time.Duration, onResult func(SearchParams, SearchResponse, error)) *Debouncer[SearchParams] {
	return NewDebouncer(delay, func(p SearchParams) {
		resp, err := c.SearchSummaries(ctx, p)
		onResult(p, resp, err)
	})
}
