package usecase

import (
	"context"
	"strings"

	"productivity-tracker/internal/model"
	"productivity-tracker/internal/search"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/summary/repository"
	"productivity-tracker/pkg/metrics"
)

// Search guards and rewrites the query, then runs a vector search when a
// vector store is configured. Keyword scoring over stored summaries answers
// when there is no vector store or the vector search fails.
func (uc *implUseCase) Search(ctx context.Context, input summary.SearchInput) (summary.SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return summary.SearchOutput{Results: []search.Result{}, Mode: summary.SearchModeKeyword}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	query := uc.improver.Improve(ctx, input.Query)

	if uc.vectorRepo != nil {
		results, err := uc.vectorSearch(ctx, query, limit)
		if err == nil {
			search.SortResults(results, input.Sort.Normalize())
			metrics.RecordSearch(string(summary.SearchModeVector))
			return summary.SearchOutput{Results: results, Mode: summary.SearchModeVector}, nil
		}
		uc.l.Warnf(ctx, "uc.Search vectorSearch: %v, falling back to keyword search", err)
	}

	results, err := uc.keywordSearch(ctx, query)
	if err != nil {
		return summary.SearchOutput{}, err
	}
	search.SortResults(results, input.Sort.Normalize())
	if len(results) > limit {
		results = results[:limit]
	}
	metrics.RecordSearch(string(summary.SearchModeKeyword))
	return summary.SearchOutput{Results: results, Mode: summary.SearchModeKeyword}, nil
}

func (uc *implUseCase) keywordSearch(ctx context.Context, query string) ([]search.Result, error) {
	all, _, err := uc.repo.ListSummaries(ctx, repository.ListSummariesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.keywordSearch ListSummaries: %v", err)
		return nil, err
	}
	return search.Search(query, all), nil
}

// vectorSearch resolves vector matches against stored summaries. Vectors whose
// summary no longer exists are removed.
func (uc *implUseCase) vectorSearch(ctx context.Context, query string, limit int) ([]search.Result, error) {
	matches, err := uc.vectorRepo.SearchSummaries(ctx, repository.SearchVectorsOptions{
		Query:     query,
		Limit:     limit,
		Threshold: uc.threshold,
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return []search.Result{}, nil
	}

	ids := make([]uint, len(matches))
	for i, m := range matches {
		ids[i] = m.SummaryID
	}
	stored, _, err := uc.repo.ListSummaries(ctx, repository.ListSummariesOptions{IDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.vectorSearch ListSummaries: %v", err)
		return nil, err
	}
	byID := make(map[uint]model.WeeklySummary, len(stored))
	for _, s := range stored {
		byID[s.ID] = s
	}

	terms := search.Terms(query)
	results := make([]search.Result, 0, len(matches))
	for i, m := range matches {
		s, ok := byID[m.SummaryID]
		if !ok {
			uc.l.Warnf(ctx, "uc.vectorSearch: summary %d no longer exists, removing its vector", m.SummaryID)
			if err := uc.vectorRepo.DeleteSummary(ctx, model.WeeklySummary{ID: m.SummaryID, WeekStart: m.WeekStart}); err != nil {
				uc.l.Warnf(ctx, "uc.vectorSearch DeleteSummary: %v", err)
			}
			continue
		}
		results = append(results, search.NewResult(s, m.Score, terms, i))
	}
	return results, nil
}
