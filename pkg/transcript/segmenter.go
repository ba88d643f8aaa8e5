package transcript

import (
	"math"
	"regexp"
	"strings"

	"podscript/pkg/domain"
)

// wordsPerMinute is the average spoken-word rate used for duration
// estimates.
const wordsPerMinute = 150.0

// maxKeywords caps the number of topic keywords kept per segment.
const maxKeywords = 10

// keywordPattern matches candidate keyword tokens: runs of at least
// four letters.
var keywordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// stopwords are common English words excluded from keyword extraction.
var stopwords = map[string]bool{
	"that": true, "this": true, "with": true, "from": true, "they": true,
	"were": true, "been": true, "have": true, "their": true, "said": true,
	"each": true, "which": true, "what": true, "where": true, "when": true,
	"will": true, "more": true, "some": true, "time": true, "very": true,
	"into": true, "just": true, "also": true, "only": true, "over": true,
	"think": true, "know": true, "people": true, "other": true, "come": true,
	"could": true, "there": true, "first": true, "after": true, "back": true,
	"work": true, "way": true, "even": true, "want": true, "because": true,
	"these": true, "give": true, "most": true, "us": true,
}

// classificationRule pairs a segment type with the phrases whose
// presence selects it. Rules are evaluated in order; the first rule
// with a matching phrase wins.
type classificationRule struct {
	segmentType domain.SegmentType
	phrases     []string
}

// classificationRules is the fixed, ordered classification table.
var classificationRules = []classificationRule{
	{domain.SegmentIntroduction, []string{"introduction", "welcome", "hello", "today we"}},
	{domain.SegmentConclusion, []string{"conclusion", "summary", "in closing", "to wrap up"}},
	{domain.SegmentQA, []string{"question", "answer", "q:", "a:"}},
	{domain.SegmentData, []string{"data", "statistics", "research", "study"}},
	{domain.SegmentNarrative, []string{"story", "example", "case", "experience"}},
}

// Segment splits cleaned transcript text into ordered, classified
// segments. Paragraphs are text blocks separated by blank lines; empty
// paragraphs are dropped. Empty input yields an empty slice, not an
// error.
func Segment(cleanText string) []domain.Segment {
	var segments []domain.Segment

	for _, paragraph := range paragraphBoundary.Split(cleanText, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		segments = append(segments, domain.Segment{
			ID:                len(segments) + 1,
			Text:              paragraph,
			WordCount:         len(strings.Fields(paragraph)),
			EstimatedDuration: EstimateDuration(paragraph),
			TopicKeywords:     ExtractKeywords(paragraph),
			Type:              Classify(paragraph),
		})
	}

	return segments
}

// EstimateDuration estimates the speaking time of text in minutes,
// rounded to two decimals.
func EstimateDuration(text string) float64 {
	wordCount := float64(len(strings.Fields(text)))
	return math.Round(wordCount/wordsPerMinute*100) / 100
}

// ExtractKeywords returns up to 10 topic keywords from text: lowercase
// tokens of at least four letters, minus stopwords, deduplicated in
// first-occurrence order. First-occurrence order makes the truncation
// deterministic across runs.
func ExtractKeywords(text string) []string {
	tokens := keywordPattern.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]bool, len(tokens))
	var keywords []string
	for _, token := range tokens {
		if stopwords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}

// Classify assigns a segment type by phrase containment, first rule
// wins. Paragraphs matching no rule default to the content type.
func Classify(text string) domain.SegmentType {
	lower := strings.ToLower(text)

	for _, rule := range classificationRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return rule.segmentType
			}
		}
	}

	return domain.SegmentContent
}
