package analytics

import (
	"math"
	"strconv"

	"productivity-tracker/internal/model"
)

const notAvailable = "N/A"

// AnalyzeTasks computes totals, focus distribution and the most productive
// focus level (most hours; ties resolve low, medium, high).
// Every task counts as completed.
func AnalyzeTasks(tasks []model.Task) Stats {
	stats := Stats{
		FocusDistribution:            map[model.FocusLevel]int{},
		FocusDistributionPercentages: map[model.FocusLevel]float64{},
		TimeByFocus:                  map[model.FocusLevel]float64{},
		MostProductiveFocus:          notAvailable,
		FocusStats:                   map[model.FocusLevel]FocusStat{},
	}
	for _, f := range model.FocusLevels {
		stats.FocusStats[f] = FocusStat{}
	}
	if len(tasks) == 0 {
		return stats
	}

	var totalHours float64
	for _, t := range tasks {
		focus := t.FocusLevel.Normalize()
		stats.FocusDistribution[focus]++
		stats.TimeByFocus[focus] += t.TimeSpent
		totalHours += t.TimeSpent
	}

	total := len(tasks)
	stats.TotalTasks = total
	stats.CompletedTasks = total
	stats.CompletionRate = 100
	stats.TotalHours = round(totalHours, 2)
	stats.AverageHoursPerTask = round(totalHours/float64(total), 2)

	best := -1.0
	for _, f := range model.FocusLevels {
		count, ok := stats.FocusDistribution[f]
		if !ok {
			continue
		}
		hours := stats.TimeByFocus[f]
		stats.FocusDistributionPercentages[f] = round(float64(count)/float64(total)*100, 2)
		stats.FocusStats[f] = FocusStat{
			Tasks:    count,
			Hours:    round(hours, 2),
			AvgHours: round(hours/float64(count), 2),
		}
		if hours > best {
			best = hours
			stats.MostProductiveFocus = string(f)
		}
	}
	return stats
}

// WeeklyStats is the compact aggregate stored on a weekly summary:
// task count, hours with one decimal and the averaged focus level.
func WeeklyStats(tasks []model.Task) model.SummaryStats {
	if len(tasks) == 0 {
		return model.SummaryStats{TotalHours: formatHours(0), AvgFocus: model.FocusLow}
	}

	var hours float64
	var focus int
	for _, t := range tasks {
		hours += t.TimeSpent
		focus += t.FocusLevel.Score()
	}
	return model.SummaryStats{
		TotalTasks: len(tasks),
		TotalHours: formatHours(hours),
		AvgFocus:   model.FocusFromAverage(float64(focus) / float64(len(tasks))),
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(round(h, 1), 'f', 1, 64)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
