package search

import (
	"regexp"
	"sort"
	"strings"

	"productivity-tracker/internal/model"
)

// Search scores summaries against query by counting prefix matches of the
// expanded query keywords in the summary text and recommendations. Summaries
// scoring zero are dropped; the rest are ordered by score, ties keeping their
// input order. An empty query returns an empty slice.
func Search(query string, summaries []model.WeeklySummary) []Result {
	results := []Result{}
	if strings.TrimSpace(query) == "" {
		return results
	}

	keywords := Expand(Tokenize(query))
	if len(keywords) == 0 {
		return results
	}
	patterns := compileKeywords(keywords)

	for i, s := range summaries {
		matches := scoreCorpus(corpus(s), patterns)
		if len(matches) == 0 {
			continue
		}
		results = append(results, newResult(s, float64(len(matches)), matches, i))
	}

	SortResults(results, SortRelevance)
	return results
}

// NewResult builds a Result for s with the given score, highlighting terms.
// order is the position used to break ties when sorting.
func NewResult(s model.WeeklySummary, score float64, terms []string, order int) Result {
	return newResult(s, score, terms, order)
}

func newResult(s model.WeeklySummary, score float64, matches []string, order int) Result {
	recs := make([]string, len(s.Recommendations))
	for i, r := range s.Recommendations {
		recs[i] = Highlight(r, matches)
	}
	return Result{
		WeeklySummary:              s,
		RelevanceScore:             score,
		HighlightedSummary:         Highlight(s.Summary, matches),
		HighlightedRecommendations: recs,
		Matches:                    matches,
		order:                      order,
	}
}

// Terms returns the keywords a query expands to, for highlighting results
// that were scored elsewhere.
func Terms(query string) []string {
	return dedupe(Expand(Tokenize(query)))
}

func corpus(s model.WeeklySummary) string {
	return strings.ToLower(s.Summary + " " + strings.Join(s.Recommendations, " "))
}

func compileKeywords(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, k := range keywords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(k) + `\w*`)
		if err != nil {
			continue
		}
		patterns = append(patterns, re)
	}
	return patterns
}

func scoreCorpus(text string, patterns []*regexp.Regexp) []string {
	var matches []string
	for _, re := range patterns {
		matches = append(matches, re.FindAllString(text, -1)...)
	}
	return matches
}

// SortResults reorders results in place by mode, descending. Ties keep the
// order in which results were first produced, so sorting is repeatable.
func SortResults(results []Result, mode SortMode) {
	less := func(a, b Result) (bool, bool) {
		switch mode.Normalize() {
		case SortDate:
			return a.WeekStart > b.WeekStart, a.WeekStart == b.WeekStart
		case SortTasks:
			return a.Stats.TotalTasks > b.Stats.TotalTasks, a.Stats.TotalTasks == b.Stats.TotalTasks
		case SortHours:
			ah, bh := a.Stats.Hours(), b.Stats.Hours()
			return ah > bh, ah == bh
		default:
			return a.RelevanceScore > b.RelevanceScore, a.RelevanceScore == b.RelevanceScore
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		before, equal := less(results[i], results[j])
		if equal {
			return results[i].order < results[j].order
		}
		return before
	})
}
