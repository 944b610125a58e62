package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Calendar performs day-granular arithmetic in a fixed timezone.
// Weeks start on Sunday.
type Calendar struct {
	location *time.Location
}

// New creates a Calendar for the given IANA timezone string, e.g. "Asia/Ho_Chi_Minh".
func New(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// NewWithLocation creates a Calendar bound to loc. A nil loc means UTC.
func NewWithLocation(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{location: loc}
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given day.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns the last nanosecond of the given day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.AddDays(c.StartOfDay(t), 1).Add(-time.Nanosecond)
}

// AddDays moves t by n calendar days, keeping wall-clock time across DST changes.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.location)
}

// StartOfWeek returns midnight of the Sunday on or before t.
func (c *Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	offset := (int(day.Weekday()) - int(WeekStart) + 7) % 7
	return c.AddDays(day, -offset)
}

// EndOfWeek returns the last nanosecond of the Saturday on or after t.
func (c *Calendar) EndOfWeek(t time.Time) time.Time {
	return c.EndOfDay(c.AddDays(c.StartOfWeek(t), 6))
}

// StartOfMonth returns midnight of the first day of t's month.
func (c *Calendar) StartOfMonth(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.location)
}

// EndOfMonth returns the last nanosecond of t's month.
func (c *Calendar) EndOfMonth(t time.Time) time.Time {
	t = t.In(c.location)
	first := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, c.location)
	return first.Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func (c *Calendar) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.location).Date()
	by, bm, bd := b.In(c.location).Date()
	return ay == by && am == bm && ad == bd
}

// DaysInclusive returns the number of calendar days in [start, end].
// It returns 0 when end is before start.
func (c *Calendar) DaysInclusive(start, end time.Time) int {
	sy, sm, sd := start.In(c.location).Date()
	ey, em, ed := end.In(c.location).Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// EachDay returns midnight of every calendar day in [start, end], in order.
func (c *Calendar) EachDay(start, end time.Time) []time.Time {
	n := c.DaysInclusive(start, end)
	days := make([]time.Time, 0, n)
	first := c.StartOfDay(start)
	for i := 0; i < n; i++ {
		days = append(days, c.AddDays(first, i))
	}
	return days
}

// ParseDate parses an ISO date ("2024-01-02") or an ISO datetime whose date part
// is taken literally ("2024-01-02T15:04:05Z"). The result is midnight in the
// calendar's timezone.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if len(s) > len(DateLayout) {
		sep := s[len(DateLayout)]
		if sep != 'T' && sep != ' ' {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
	}
	d, err := time.ParseInLocation(DateLayout, s[:len(DateLayout)], c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// NormalizeDate parses s and re-renders it as DateLayout.
func (c *Calendar) NormalizeDate(s string) (string, error) {
	d, err := c.ParseDate(s)
	if err != nil {
		return "", err
	}
	return c.Format(d), nil
}

// Format renders t as DateLayout in the calendar's timezone.
func (c *Calendar) Format(t time.Time) string {
	return t.In(c.location).Format(DateLayout)
}

var utcCalendar = NewWithLocation(time.UTC)

// NormalizeDate validates s as a calendar date independent of any timezone.
func NormalizeDate(s string) (string, error) {
	return utcCalendar.NormalizeDate(s)
}
