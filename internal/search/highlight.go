package search

import (
	"html"
	"regexp"
	"sort"
	"strings"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Highlight renders text as HTML, wrapping every whole-word, case-insensitive
// occurrence of terms with <mark></mark>. Everything outside the markers is
// escaped. Overlapping occurrences share one marker pair and markup from an
// earlier call is undone first, so applying Highlight twice yields the same
// output.
func Highlight(text string, terms []string) string {
	plain := html.UnescapeString(StripMarks(text))
	spans := findSpans(plain, terms)

	var sb strings.Builder
	sb.Grow(len(plain) + len(spans)*(len(markOpen)+len(markClose)))
	prev := 0
	for _, s := range spans {
		sb.WriteString(html.EscapeString(plain[prev:s[0]]))
		sb.WriteString(markOpen)
		sb.WriteString(html.EscapeString(plain[s[0]:s[1]]))
		sb.WriteString(markClose)
		prev = s[1]
	}
	sb.WriteString(html.EscapeString(plain[prev:]))
	return sb.String()
}

// StripMarks removes highlight markers from text.
func StripMarks(text string) string {
	if !strings.Contains(text, "<mark>") && !strings.Contains(text, "</mark>") {
		return text
	}
	return strings.NewReplacer(markOpen, "", markClose, "").Replace(text)
}

// findSpans returns the merged, sorted byte ranges of all term occurrences.
func findSpans(text string, terms []string) [][2]int {
	var spans [][2]int
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		term = strings.ToLower(term)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i][0] != spans[j][0] {
			return spans[i][0] < spans[j][0]
		}
		return spans[i][1] > spans[j][1]
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s[0] <= last[1] {
			if s[1] > last[1] {
				last[1] = s[1]
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
