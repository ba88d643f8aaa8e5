// Package script assembles processed transcript segments into a
// complete podcast script: intro, polished main-content blocks,
// transitions, outro, show notes and episode metadata.
package script

import (
	"fmt"
	"math"
	"strings"
	"time"

	"podscript/pkg/domain"
	"podscript/pkg/speaker"
)

// Fixed section durations in minutes.
const (
	introDuration = 1.5
	outroDuration = 2.0

	// transitionBuffer is the per-transition allowance added to the
	// total estimate.
	transitionBuffer = 0.1
)

// Generator produces podcast scripts for one show configuration. A
// Generator is stateless across calls; each Generate invocation is an
// independent single-pass transform.
type Generator struct {
	show domain.ShowConfig

	// now is swappable for tests.
	now func() time.Time
}

// NewGenerator creates a script generator for the given show
// configuration. An invalid configuration is a contract violation and
// fails fast.
func NewGenerator(show domain.ShowConfig) (*Generator, error) {
	if err := show.Validate(); err != nil {
		return nil, fmt.Errorf("invalid show config: %w", err)
	}
	return &Generator{show: show, now: time.Now}, nil
}

// Generate builds the complete script for the given segments. It always
// returns a result tagged "success" or "error"; unexpected failures
// during assembly are recovered at this boundary and converted into the
// error result shape rather than propagated.
func (g *Generator) Generate(segments []domain.Segment) (result domain.GenerationResult) {
	generatedAt := g.now().Format(time.RFC3339)

	defer func() {
		if r := recover(); r != nil {
			result = domain.GenerationResult{
				Status:      "error",
				Message:     fmt.Sprintf("script generation failed: %v", r),
				GeneratedAt: generatedAt,
			}
		}
	}()

	speakers := speaker.Resolve(g.show, segments)

	doc := &domain.ScriptDocument{
		Intro:       g.generateIntro(segments, speakers),
		MainContent: g.generateMainContent(segments, speakers),
		Transitions: g.generateTransitions(segments),
		Outro:       g.generateOutro(segments, speakers),
		ShowNotes:   g.generateShowNotes(segments),
		Metadata:    g.generateMetadata(segments, generatedAt),
		Speakers:    speakers,
	}

	return domain.GenerationResult{
		Status:            "success",
		Script:            g.assemble(doc),
		Sections:          doc,
		EstimatedDuration: totalDuration(segments, len(doc.Transitions)),
		GeneratedAt:       generatedAt,
	}
}

// totalDuration is the full episode estimate: fixed intro and outro
// plus segment durations plus a small buffer per transition.
func totalDuration(segments []domain.Segment, transitions int) float64 {
	total := introDuration + outroDuration
	for _, s := range segments {
		total += s.EstimatedDuration
	}
	total += transitionBuffer * float64(transitions)
	return math.Round(total*100) / 100
}

// joinNatural joins items into natural language: "A", "A and B", or an
// Oxford-style "A, B, and C". Empty input yields the fallback phrase.
func joinNatural(items []string, fallback string) string {
	switch len(items) {
	case 0:
		return fallback
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// uniqueInOrder deduplicates items preserving first-occurrence order,
// keeping at most limit entries.
func uniqueInOrder(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

// leadTopics gathers one leading keyword per segment, deduplicated in
// first-occurrence order, up to limit.
func leadTopics(segments []domain.Segment, limit int) []string {
	var topics []string
	for _, s := range segments {
		if len(s.TopicKeywords) > 0 {
			topics = append(topics, s.TopicKeywords[0])
		}
	}
	return uniqueInOrder(topics, limit)
}

// formatClock renders fractional minutes as MM:SS with the seconds
// component truncated, matching the published show-notes format.
func formatClock(minutes float64) string {
	whole := int(minutes)
	seconds := int((minutes - math.Trunc(minutes)) * 60)
	return fmt.Sprintf("%02d:%02d", whole, seconds)
}
