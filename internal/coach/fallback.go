package coach

// Fallback returns the fixed offline summary.
func Fallback() Output {
	return Output{
		Summary:         FallbackSummary,
		Recommendations: []string{FallbackRecommendation},
	}
}
