package trackerclient

import (
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/search"
)

// SearchLocal scores already-fetched summaries with the server's keyword
// scorer. Use it offline or when the server search is unavailable.
func SearchLocal(summaries []Summary, query, sort string) []SearchResult {
	in := make([]model.WeeklySummary, 0, len(summaries))
	for _, s := range summaries {
		in = append(in, toModel(s))
	}

	results := search.Search(query, in)
	search.SortResults(results, search.SortMode(sort))

	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResult{
			Summary:                    fromModel(r.WeeklySummary),
			RelevanceScore:             r.RelevanceScore,
			HighlightedSummary:         r.HighlightedSummary,
			HighlightedRecommendations: r.HighlightedRecommendations,
		})
	}
	return out
}

func toModel(s Summary) model.WeeklySummary {
	return model.WeeklySummary{
		ID:              s.ID,
		WeekStart:       s.WeekStart,
		WeekEnd:         s.WeekEnd,
		Summary:         s.Summary,
		Recommendations: s.Recommendations,
		Stats: model.SummaryStats{
			TotalTasks: s.Stats.TotalTasks,
			TotalHours: s.Stats.TotalHours,
			AvgFocus:   model.FocusLevel(s.Stats.AvgFocus),
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func fromModel(m model.WeeklySummary) Summary {
	return Summary{
		ID:              m.ID,
		WeekStart:       m.WeekStart,
		WeekEnd:         m.WeekEnd,
		Summary:         m.Summary,
		Recommendations: m.Recommendations,
		Stats: SummaryStats{
			TotalTasks: m.Stats.TotalTasks,
			TotalHours: m.Stats.TotalHours,
			AvgFocus:   string(m.Stats.AvgFocus),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
