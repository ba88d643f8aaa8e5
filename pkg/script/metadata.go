package script

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"podscript/pkg/domain"
)

// introOutroAllowance is the fixed minutes added to the published
// duration for the intro and outro blocks.
const introOutroAllowance = 3.5

var titleCaser = cases.Title(language.English)

// generateMetadata builds the episode publishing metadata.
func (g *Generator) generateMetadata(segments []domain.Segment, generatedAt string) domain.Metadata {
	total := introOutroAllowance
	var allKeywords []string
	for _, s := range segments {
		total += s.EstimatedDuration
		allKeywords = append(allKeywords, s.TopicKeywords...)
	}

	return domain.Metadata{
		Title:           episodeTitle(segments),
		Description:     episodeSummary(segments),
		Duration:        formatClock(total),
		Tags:            uniqueInOrder(allKeywords, 10),
		Category:        "Technology",
		Explicit:        false,
		PublicationDate: generatedAt,
	}
}

// episodeTitle derives "Deep Dive: The Future of X" from the most
// frequent keyword across all segments. Ties break toward the keyword
// that reached the maximum first, keeping titles deterministic.
func episodeTitle(segments []domain.Segment) string {
	if len(segments) == 0 {
		return "Deep Dive: Exploring New Frontiers"
	}

	counts := make(map[string]int)
	var top string
	topCount := 0
	for _, s := range segments {
		for _, kw := range s.TopicKeywords {
			counts[kw]++
			if counts[kw] > topCount {
				top, topCount = kw, counts[kw]
			}
		}
	}

	if top == "" {
		return "Deep Dive: Innovation and Impact"
	}

	return fmt.Sprintf("Deep Dive: The Future of %s", titleCaser.String(top))
}
