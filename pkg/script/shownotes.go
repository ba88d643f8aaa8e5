package script

import (
	"fmt"
	"regexp"
	"strings"

	"podscript/pkg/domain"
)

// summarySegments is how many leading segments feed the episode summary.
const summarySegments = 5

var sentenceEnd = regexp.MustCompile(`[.!?]`)

// generateShowNotes derives the published companion text: summary, key
// points, a timestamp table, placeholder resources and social snippets.
func (g *Generator) generateShowNotes(segments []domain.Segment) domain.ShowNotes {
	var keyPoints []string
	var timestamps []domain.TimestampEntry

	// The running clock starts after the fixed-length intro.
	clock := introDuration

	for _, s := range segments {
		topic := "Discussion"
		if len(s.TopicKeywords) > 0 {
			topic = s.TopicKeywords[0]
		}

		timestamps = append(timestamps, domain.TimestampEntry{
			Time:        formatClock(clock),
			Topic:       topic,
			Description: truncate(s.Text, 100),
		})

		if s.Type == domain.SegmentData || s.Type == domain.SegmentNarrative {
			keyPoints = append(keyPoints, keyPoint(s.Text))
		}

		clock += s.EstimatedDuration
	}

	return domain.ShowNotes{
		EpisodeSummary:      episodeSummary(segments),
		KeyPoints:           keyPoints,
		Timestamps:          timestamps,
		Resources:           suggestedResources(),
		SocialMediaSnippets: g.socialSnippets(),
	}
}

// episodeSummary composes one summary sentence from the leading topics
// of the first few segments.
func episodeSummary(segments []domain.Segment) string {
	if len(segments) == 0 {
		return "An insightful discussion about current developments and their implications."
	}

	head := segments
	if len(head) > summarySegments {
		head = head[:summarySegments]
	}
	topics := leadTopics(head, 4)

	if len(topics) == 0 {
		return "A comprehensive discussion covering important developments and insights."
	}

	return fmt.Sprintf("In this episode, we explore %s, examining their impact and implications for the future.",
		joinNatural(topics, ""))
}

// keyPoint extracts one key point from segment text: the first sentence
// when it is substantial, otherwise a leading excerpt.
func keyPoint(text string) string {
	sentences := sentenceEnd.Split(text, -1)
	if len(sentences) > 0 {
		first := strings.TrimSpace(sentences[0])
		if len(first) > 20 {
			return first + "."
		}
	}
	return truncate(text, 150)
}

// truncate shortens text to at most n runes plus an ellipsis, never
// splitting a multibyte character.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) > n {
		return string(runes[:n]) + "..."
	}
	return text
}

func suggestedResources() []domain.Resource {
	return []domain.Resource{
		{Title: "Research Paper on AI Development", URL: "https://example.com/research"},
		{Title: "Industry Report 2024", URL: "https://example.com/report"},
		{Title: "Expert Interview Series", URL: "https://example.com/interviews"},
	}
}

func (g *Generator) socialSnippets() []string {
	return []string{
		fmt.Sprintf("🎙️ New episode of %s is live! We dive deep into cutting-edge developments and their real-world impact.", g.show.ShowName),
		"💡 Key insight from today's episode: The future is closer than we think!",
		"📊 The numbers might surprise you - listen to our latest episode to find out why.",
	}
}
