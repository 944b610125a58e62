package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"productivity-tracker/pkg/llmprovider"
)

// ErrEmptyResponse is returned when the model answers without a summary or
// without recommendations.
var ErrEmptyResponse = errors.New(ErrMsgEmptyResponse)

// Write asks the model for a summary of input. Any failure is returned; the
// caller decides whether a fallback is acceptable.
func (c *Coach) Write(ctx context.Context, input Input) (Output, error) {
	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptSummarySystem}},
		},
		Messages: []llmprovider.Message{{
			Role:  "user",
			Parts: []llmprovider.Part{{Text: BuildPrompt(input)}},
		}},
		Temperature: CoachTemperature,
		MaxTokens:   CoachMaxTokens,
	})
	if err != nil {
		return Output{}, fmt.Errorf("%s: %s: %w", LogPrefixWrite, ErrMsgLLMCallFailed, err)
	}

	out, err := ParseOutput(resp.Text())
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", LogPrefixWrite, err)
		return Output{}, err
	}

	c.l.Infof(ctx, "%s: wrote summary for week %s with %d recommendations", LogPrefixWrite, input.WeekStart, len(out.Recommendations))
	return out, nil
}

// ParseOutput decodes the model's JSON answer, tolerating markdown code fences.
func ParseOutput(text string) (Output, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var out Output
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return Output{}, fmt.Errorf("%s: %w", ErrMsgJSONParseFailed, err)
	}

	out.Summary = strings.TrimSpace(out.Summary)
	recs := make([]string, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		if r = strings.TrimSpace(r); r != "" {
			recs = append(recs, r)
		}
	}
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	out.Recommendations = recs

	if out.Summary == "" || len(out.Recommendations) == 0 {
		return Output{}, ErrEmptyResponse
	}
	return out, nil
}

// BuildPrompt renders the per-week user prompt.
func BuildPrompt(input Input) string {
	lines := make([]string, len(input.Tasks))
	for i, t := range input.Tasks {
		lines[i] = fmt.Sprintf("- %s (%gh, %s focus)", t.Name, t.TimeSpent, t.FocusLevel.Normalize())
	}
	return fmt.Sprintf(PromptWeekTemplate,
		input.WeekStart, input.WeekEnd,
		input.Stats.TotalTasks, input.Stats.TotalHours, input.Stats.AvgFocus,
		strings.Join(lines, "\n"),
		buildContext(input.Context),
	)
}

func buildContext(cs ContextSummaries) string {
	var parts []string
	if len(cs.Before) > 0 {
		parts = append(parts, PromptBeforeHeader)
		parts = append(parts, contextLines(cs.Before)...)
	}
	if len(cs.After) > 0 {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, PromptAfterHeader)
		parts = append(parts, contextLines(cs.After)...)
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n" + PromptContextPrefix + strings.Join(parts, "\n")
}

func contextLines(summaries []ContextSummary) []string {
	var lines []string
	for _, s := range summaries {
		week := s.WeekRange
		if week == "" {
			week = UnknownWeekRange
		}
		lines = append(lines, fmt.Sprintf("* %s: %s", week, s.Summary))
		if len(s.Recommendations) > 0 {
			lines = append(lines, "  Recommendations: "+strings.Join(s.Recommendations, ", "))
		}
	}
	return lines
}
