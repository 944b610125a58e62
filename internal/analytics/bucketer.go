package analytics

import (
	"time"

	"productivity-tracker/internal/model"
	"productivity-tracker/pkg/datemath"
)

const (
	quarterWeeks = 12
	allMaxWeeks  = 26

	weekDisplayDays    = 7
	monthDisplayDays   = 30
	defaultDisplayDays = 14

	weekLabelLayout    = "Jan 02"
	defaultLabelLayout = "01/02"
)

// Bucketer turns task lists into range-scoped chart datasets.
// It is stateless apart from its calendar and safe for concurrent use.
type Bucketer struct {
	cal *datemath.Calendar
}

// NewBucketer creates a Bucketer working in cal's timezone.
func NewBucketer(cal *datemath.Calendar) *Bucketer {
	return &Bucketer{cal: cal}
}

// Calendar returns the calendar the bucketer works in.
func (b *Bucketer) Calendar() *datemath.Calendar {
	return b.cal
}

// ComputeRange resolves keyword against now. tasks only matter for RangeAll,
// where the earliest parseable task date can shorten the window.
func (b *Bucketer) ComputeRange(keyword RangeKeyword, tasks []model.Task, now time.Time) Range {
	keyword = keyword.Normalize()
	weekStart := b.cal.StartOfWeek(now)
	weekEnd := b.cal.EndOfWeek(now)

	r := Range{Keyword: keyword, Start: weekStart, End: weekEnd}

	switch keyword {
	case RangeMonth:
		monthStart := b.cal.StartOfMonth(now)
		monthEnd := b.cal.EndOfMonth(now)
		lastSunday := monthStart
		for sunday := b.cal.StartOfWeek(monthStart); !sunday.After(monthEnd); sunday = b.cal.AddDays(sunday, 7) {
			if !sunday.Before(monthStart) {
				lastSunday = sunday
			}
		}
		r.Start = b.cal.StartOfWeek(monthStart)
		r.End = b.cal.EndOfWeek(lastSunday)

	case RangeQuarter:
		r.Start = b.cal.AddDays(weekStart, -7*quarterWeeks)

	case RangeAll:
		floor := b.cal.AddDays(b.cal.StartOfDay(now), -7*allMaxWeeks)
		start := floor
		if earliest, ok := b.earliestTaskDate(tasks); ok && earliest.After(floor) {
			start = earliest
		}
		r.Start = b.cal.StartOfWeek(start)
	}

	r.Days = b.cal.DaysInclusive(r.Start, r.End)
	return r
}

func (b *Bucketer) earliestTaskDate(tasks []model.Task) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, t := range tasks {
		d, err := b.cal.ParseDate(t.DateWorked)
		if err != nil {
			continue
		}
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	return earliest, found
}

// InRange reports whether the task's calendar day lies within r.
// Malformed dates never match.
func (b *Bucketer) InRange(t model.Task, r Range) bool {
	d, err := b.cal.ParseDate(t.DateWorked)
	if err != nil {
		return false
	}
	return !d.Before(b.cal.StartOfDay(r.Start)) && !d.After(r.End)
}

// FilterTasks keeps the tasks whose date falls within r, preserving order.
func (b *Bucketer) FilterTasks(tasks []model.Task, r Range) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if b.InRange(t, r) {
			out = append(out, t)
		}
	}
	return out
}

// DisplayDays is the chart window length for r: at most 7 for week,
// 30 for month and 14 otherwise.
func DisplayDays(r Range) int {
	limit := defaultDisplayDays
	switch r.Keyword {
	case RangeWeek:
		limit = weekDisplayDays
	case RangeMonth:
		limit = monthDisplayDays
	}
	if r.Days < limit {
		return r.Days
	}
	return limit
}

// BucketDaily returns DisplayDays(r) trailing days ending on r's last day,
// oldest first, with per-focus task counts and hours. Days without tasks
// are zero-filled. Unknown focus levels count as medium.
func (b *Bucketer) BucketDaily(tasks []model.Task, r Range) []DayBucket {
	n := DisplayDays(r)
	labelLayout := defaultLabelLayout
	if r.Keyword == RangeWeek {
		labelLayout = weekLabelLayout
	}

	byDay := b.indexByDay(b.FilterTasks(tasks, r))
	lastDay := b.cal.StartOfDay(r.End)

	buckets := make([]DayBucket, n)
	for i := 0; i < n; i++ {
		day := b.cal.AddDays(lastDay, -(n - 1 - i))
		key := b.cal.Format(day)
		bucket := DayBucket{Date: key, Label: day.Format(labelLayout)}
		for _, t := range byDay[key] {
			bucket.add(t)
		}
		buckets[i] = bucket
	}
	return buckets
}

func (d *DayBucket) add(t model.Task) {
	switch t.FocusLevel.Normalize() {
	case model.FocusLow:
		d.Low++
		d.LowTime += t.TimeSpent
	case model.FocusHigh:
		d.High++
		d.HighTime += t.TimeSpent
	default:
		d.Medium++
		d.MediumTime += t.TimeSpent
	}
	d.Tasks++
	d.Hours += t.TimeSpent
}

// BucketHeatmap returns one entry per day in [r.Start, r.End].
// Intensity is the day's total hours.
func (b *Bucketer) BucketHeatmap(tasks []model.Task, r Range) []HeatmapDay {
	byDay := b.indexByDay(b.FilterTasks(tasks, r))
	days := b.cal.EachDay(r.Start, r.End)

	out := make([]HeatmapDay, len(days))
	for i, day := range days {
		key := b.cal.Format(day)
		h := HeatmapDay{
			Date:           key,
			Day:            day.Format("02"),
			IsFirstOfMonth: day.Day() == 1,
		}
		if h.IsFirstOfMonth {
			name := day.Format("Jan")
			h.MonthName = &name
		}
		for _, t := range byDay[key] {
			h.Intensity += t.TimeSpent
			h.Tasks++
		}
		out[i] = h
	}
	return out
}

// IntensityBand maps a day's hours to a 0..3 colour band (0, <=2, <=6, >6).
func IntensityBand(hours float64) int {
	switch {
	case hours <= 0:
		return 0
	case hours <= 2:
		return 1
	case hours <= 6:
		return 2
	default:
		return 3
	}
}

func (b *Bucketer) indexByDay(tasks []model.Task) map[string][]model.Task {
	byDay := make(map[string][]model.Task, len(tasks))
	for _, t := range tasks {
		d, err := b.cal.ParseDate(t.DateWorked)
		if err != nil {
			continue
		}
		key := b.cal.Format(d)
		byDay[key] = append(byDay[key], t)
	}
	return byDay
}
