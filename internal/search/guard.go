package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxQueryLength = 500

var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bignore\b.*\binstructions?\b`),
	regexp.MustCompile(`(?i)\bforget\b.*\babove\b`),
	regexp.MustCompile(`(?i)\bpretend\b.*\byou\s+are\b`),
	regexp.MustCompile(`(?i)\brole\s*[:=]\s*\w+`),
	regexp.MustCompile(`(?i)\bsystem\s*[:=]`),
	regexp.MustCompile(`(?i)\bassistant\s*[:=]`),
	regexp.MustCompile(`(?i)\buser\s*[:=]`),
	regexp.MustCompile("```.*```"),
	regexp.MustCompile(`<[^>]*>.*</[^>]*>`),
	regexp.MustCompile(`(?i)\b(execute|run|eval|exec)\b.*\bcode\b`),
	regexp.MustCompile(`(?i)\bdisregard\b.*\bprevious\b`),
	regexp.MustCompile(`(?i)\boverride\b.*\bsettings?\b`),
}

var (
	specialRun   = regexp.MustCompile(`[^\p{L}\p{N}_\s]{5,}`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	codeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	rolePromptRe = regexp.MustCompile(`(?i)\b(role|system|assistant|user)\s*[:=]\s*\S*`)
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,!?]`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// DetectInjection reports whether q looks like an attempt to steer the
// language model rather than a search query.
func DetectInjection(q string) bool {
	lower := strings.ToLower(strings.TrimSpace(q))
	for _, re := range injectionPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	if utf8.RuneCountInString(q) > maxQueryLength {
		return true
	}
	return specialRun.MatchString(q)
}

// Sanitize strips markup, code blocks and role prompts from q and keeps only
// letters, digits, whitespace and basic punctuation.
func Sanitize(q string) string {
	q = tagRe.ReplaceAllString(q, "")
	q = codeBlockRe.ReplaceAllString(q, "")
	q = rolePromptRe.ReplaceAllString(q, "")
	q = disallowedRe.ReplaceAllString(q, " ")
	q = spaceRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// NormalizeForEmbedding lower-cases text and collapses whitespace.
func NormalizeForEmbedding(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

// StripTags removes HTML tags, keeping their inner text.
func StripTags(text string) string {
	return tagRe.ReplaceAllString(text, "")
}
