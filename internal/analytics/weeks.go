package analytics

import (
	"sort"
	"time"

	"productivity-tracker/internal/model"
)

// GroupByWeek groups tasks by the ISO date of the Sunday starting their week.
// Tasks with malformed dates are dropped.
func (b *Bucketer) GroupByWeek(tasks []model.Task) map[string][]model.Task {
	groups := make(map[string][]model.Task)
	for _, t := range tasks {
		d, err := b.cal.ParseDate(t.DateWorked)
		if err != nil {
			continue
		}
		key := b.cal.Format(b.cal.StartOfWeek(d))
		groups[key] = append(groups[key], t)
	}
	return groups
}

// WeekKeys returns the keys of a GroupByWeek result, newest first.
func WeekKeys(groups map[string][]model.Task) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// WeekOf returns the week containing t.
func (b *Bucketer) WeekOf(t time.Time) Week {
	start := b.cal.StartOfWeek(t)
	end := b.cal.EndOfWeek(t)
	return Week{
		Start:     start,
		End:       end,
		WeekStart: b.cal.Format(start),
		WeekEnd:   b.cal.Format(end),
		Number:    weekNumber(start),
		Year:      start.Year(),
	}
}

// WeeksInRange lists the weeks from the one containing start while the week
// start is neither after end nor after now, newest first.
func (b *Bucketer) WeeksInRange(start, end, now time.Time) []Week {
	var weeks []Week
	for ws := b.cal.StartOfWeek(start); !ws.After(end) && !ws.After(now); ws = b.cal.AddDays(ws, 7) {
		weeks = append(weeks, b.WeekOf(ws))
	}
	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return weeks
}

// weekNumber counts Sunday-start weeks within start's year, week 1 being
// the one that contains January 1st.
func weekNumber(start time.Time) int {
	jan1 := time.Date(start.Year(), time.January, 1, 0, 0, 0, 0, start.Location())
	offset := int(jan1.Weekday())
	return (start.YearDay()-1+offset)/7 + 1
}
