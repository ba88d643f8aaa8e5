package transcript

import (
	"regexp"
	"strings"
)

// correction is one regex-based spelling or contraction fix. The table
// below is configuration: new corrections are added here without
// touching the cleaning control flow.
type correction struct {
	pattern     *regexp.Regexp
	replacement string
}

// corrections fixes common transcription errors. Patterns are applied
// in order, case-insensitively.
var corrections = []correction{
	{regexp.MustCompile(`(?i)\btheres\b`), "there's"},
	{regexp.MustCompile(`(?i)\bwere(\s+going)\b`), "we're$1"},
	{regexp.MustCompile(`(?i)\bits(\s+a)\b`), "it's$1"},
	{regexp.MustCompile(`(?i)\byouve\b`), "you've"},
	{regexp.MustCompile(`(?i)\bweve\b`), "we've"},
	{regexp.MustCompile(`(?i)\btheyre\b`), "they're"},
}

var (
	// timestampPattern matches bracketed timestamp markers like [00:01:23].
	timestampPattern = regexp.MustCompile(`\[[\d:]+\]`)

	// leadingSpeakerPattern matches all-caps speaker tags at line starts,
	// e.g. "SPEAKER 1:" or "INTERVIEWER:".
	leadingSpeakerPattern = regexp.MustCompile(`(?m)^[A-Z\s]+\d*\s*:`)

	// inlineSpeakerPattern matches role tags anywhere in the text.
	inlineSpeakerPattern = regexp.MustCompile(`(?i)\b(Speaker|Host|Interviewer|Guest)\s*\d*\s*:\s*`)

	// fillerPattern matches filler words as whole words.
	fillerPattern = regexp.MustCompile(`(?i)\b(um|uh|er|ah|like|you know)\b`)

	doubleCommaPattern   = regexp.MustCompile(`\s*,\s*,`)
	spacedQuestionBefore = regexp.MustCompile(`\s+\?`)
	spacedQuestionAfter  = regexp.MustCompile(`\?\s+`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	paragraphBoundary = regexp.MustCompile(`\n\s*\n`)
)

// Clean normalizes a raw transcript: it strips timestamp markers,
// speaker tags and filler words, applies the correction table, and
// repairs the punctuation artifacts those removals leave behind.
//
// Blank-line paragraph boundaries are preserved so that the segmenter
// can split the result; all other whitespace runs collapse to single
// spaces. Clean is a pure function and never fails: input with nothing
// to remove passes through unchanged apart from whitespace folding.
func Clean(raw string) string {
	paragraphs := paragraphBoundary.Split(raw, -1)

	cleaned := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		c := cleanParagraph(p)
		if c != "" {
			cleaned = append(cleaned, c)
		}
	}

	return strings.Join(cleaned, "\n\n")
}

func cleanParagraph(text string) string {
	text = timestampPattern.ReplaceAllString(text, "")
	text = leadingSpeakerPattern.ReplaceAllString(text, "")
	text = inlineSpeakerPattern.ReplaceAllString(text, "")
	text = fillerPattern.ReplaceAllString(text, "")

	for _, c := range corrections {
		text = c.pattern.ReplaceAllString(text, c.replacement)
	}

	// Removals leave stray commas, floating question marks and runs of
	// whitespace behind; fold them back into readable punctuation.
	text = doubleCommaPattern.ReplaceAllString(text, ",")
	text = spacedQuestionBefore.ReplaceAllString(text, "?")
	text = spacedQuestionAfter.ReplaceAllString(text, "? ")
	text = whitespaceRunPattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
