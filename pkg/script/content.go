package script

import (
	"fmt"
	"regexp"
	"strings"

	"podscript/pkg/domain"
)

// generateMainContent turns each segment into a polished, speaker-
// labeled content block with production notes.
func (g *Generator) generateMainContent(segments []domain.Segment, speakers domain.SpeakerConfig) []domain.ContentBlock {
	blocks := make([]domain.ContentBlock, 0, len(segments))

	for _, s := range segments {
		blocks = append(blocks, domain.ContentBlock{
			SegmentID:         s.ID,
			Type:              s.Type,
			Script:            naturalize(polishSegment(s, speakers.Format)),
			EstimatedDuration: s.EstimatedDuration,
			ProductionNotes:   productionNotes(s),
			Keywords:          s.TopicKeywords,
		})
	}

	return blocks
}

// polishSegment wraps raw segment text in dialogue chosen from the
// fixed (segment type × speaker format) template table.
func polishSegment(s domain.Segment, format domain.SpeakerFormat) string {
	switch s.Type {
	case domain.SegmentData:
		switch format {
		case domain.FormatInterview:
			return fmt.Sprintf("HOST: Now, here's something that really caught my attention. %s\n\n"+
				"GUEST: Those numbers really stand out - and they match what we're seeing in the field.\n\n"+
				"HOST: Let me break that down for you - because these numbers tell a really important story.", s.Text)
		case domain.FormatMultiHost:
			return fmt.Sprintf("HOST: Now, here's something that really caught my attention. %s\n\n"+
				"CO-HOST: And the numbers only tell half the story - wait until you hear what's behind them.", s.Text)
		default:
			return fmt.Sprintf("HOST: Now, here's something that really caught my attention. %s\n\n"+
				"[PAUSE FOR EMPHASIS]\n\n"+
				"HOST: Let me break that down for you - because these numbers tell a really important story.", s.Text)
		}

	case domain.SegmentNarrative:
		switch format {
		case domain.FormatInterview:
			return fmt.Sprintf("HOST: Let me share a story that perfectly illustrates this point. %s\n\n"+
				"GUEST: That mirrors my own experience - I've watched the same pattern play out more than once.", s.Text)
		case domain.FormatMultiHost:
			return fmt.Sprintf("HOST: Let me share a story that perfectly illustrates this point. %s\n\n"+
				"CO-HOST: And this isn't just one isolated example - we're seeing this pattern emerge across the industry.", s.Text)
		default:
			return fmt.Sprintf("HOST: Let me share a story that perfectly illustrates this point. %s\n\n"+
				"HOST: And this isn't just one isolated example - we're seeing this pattern emerge across the industry.", s.Text)
		}

	case domain.SegmentQA:
		switch format {
		case domain.FormatInterview:
			return fmt.Sprintf("HOST: Now, you might be wondering... %s\n\n"+
				"GUEST: It's a great question, and the answer might surprise you.", s.Text)
		case domain.FormatMultiHost:
			return fmt.Sprintf("HOST: Now, you might be wondering... %s\n\n"+
				"CO-HOST: It's a great question, and the answer might surprise you.", s.Text)
		default:
			return fmt.Sprintf("HOST: Now, you might be wondering... %s\n\n"+
				"HOST: It's a great question, and the answer might surprise you.", s.Text)
		}

	default:
		return fmt.Sprintf("HOST: %s\n\n[NATURAL PAUSE]", s.Text)
	}
}

var (
	emphasisPattern = regexp.MustCompile(`(?i)\b(really|very|extremely)\b`)
	pausePattern    = regexp.MustCompile(`([.!?]) +([A-Z])`)

	// cueLinePattern matches lines that are entirely a bracketed
	// production cue.
	cueLinePattern = regexp.MustCompile(`^\[[^\]]*\]$`)

	// labelLinePattern matches lines that are only a speaker label.
	labelLinePattern = regexp.MustCompile(`^[A-Z][A-Z -]*:$`)

	// labelPrefixPattern captures a leading speaker label of a dialogue line.
	labelPrefixPattern = regexp.MustCompile(`^([A-Z][A-Z -]*):`)
)

// naturalize applies the speech-naturalization post-pass: intensifiers
// get an emphasis marker, and sentence boundaries followed by a capital
// letter get a paragraph break and pause marker. Lines that are bare
// production cues or bare speaker labels pass through unmodified.
func naturalize(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if cueLinePattern.MatchString(trimmed) || labelLinePattern.MatchString(trimmed) {
			continue
		}

		label := "HOST"
		if m := labelPrefixPattern.FindStringSubmatch(trimmed); m != nil {
			label = m[1]
		}

		line = emphasisPattern.ReplaceAllString(line, "[EMPHASIS] $1")
		line = pausePattern.ReplaceAllString(line, "$1\n\n[NATURAL PAUSE]\n\n"+label+": $2")
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

// productionNotes derives advisory notes for audio editing. Notes are
// order-stable and may be empty.
func productionNotes(s domain.Segment) []string {
	var notes []string

	if s.Type == domain.SegmentData {
		notes = append(notes,
			"Consider adding subtle background music for statistics",
			"Emphasize key numbers with vocal inflection")
	}

	if s.EstimatedDuration > 3 {
		notes = append(notes, "Long segment - consider adding a mid-segment music break")
	}

	if len(s.TopicKeywords) > 5 {
		notes = append(notes, "Dense content - speak slower and add extra pauses")
	}

	return notes
}
