package search

import (
	"strings"
	"unicode/utf8"
)

const minTokenLength = 3

// synonyms expands common productivity terms.
var synonyms = map[string][]string{
	"coding":   {"programming", "development", "software", "code"},
	"meeting":  {"meetings", "call", "discussion", "collaboration"},
	"design":   {"ui", "ux", "interface", "mockup", "wireframe"},
	"testing":  {"qa", "debug", "bug", "test"},
	"focus":    {"concentration", "productivity", "deep work"},
	"planning": {"strategy", "roadmap", "organize"},
}

// reverseSynonyms maps a synonym back to the terms that list it.
var reverseSynonyms = buildReverseSynonyms()

func buildReverseSynonyms() map[string][]string {
	out := make(map[string][]string)
	for _, term := range []string{"coding", "meeting", "design", "testing", "focus", "planning"} {
		for _, syn := range synonyms[term] {
			out[syn] = append(out[syn], term)
		}
	}
	return out
}

// Tokenize lower-cases q, splits it on whitespace and drops tokens shorter than three characters.
func Tokenize(q string) []string {
	fields := strings.Fields(strings.ToLower(q))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Expand returns every token followed by its synonyms and by the terms that
// list it as a synonym. Repeats are kept: a keyword reached twice scores twice.
func Expand(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, tok)
		out = append(out, synonyms[tok]...)
		out = append(out, reverseSynonyms[tok]...)
	}
	return out
}

// dedupe drops repeated keywords, first occurrence wins.
func dedupe(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
