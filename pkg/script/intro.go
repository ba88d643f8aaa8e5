package script

import (
	"fmt"
	"strings"

	"podscript/pkg/domain"
)

// previewSegments is how many leading segments feed the episode preview.
const previewSegments = 4

// generateIntro builds the opening block: hook, topic teaser and
// episode preview, templated by the resolved speaker format.
func (g *Generator) generateIntro(segments []domain.Segment, speakers domain.SpeakerConfig) domain.IntroSection {
	// Up to 3 preview topics from the first 3 segments' keywords.
	var topics []string
	for _, s := range segments {
		if s.ID > 3 {
			break
		}
		keywords := s.TopicKeywords
		if len(keywords) > 2 {
			keywords = keywords[:2]
		}
		topics = append(topics, keywords...)
	}
	if len(topics) > 3 {
		topics = topics[:3]
	}

	topicsPhrase := "cutting-edge developments"
	if len(topics) > 0 {
		topicsPhrase = strings.Join(topics, ", ")
	}
	preview := episodePreview(segments)

	var b strings.Builder
	fmt.Fprintf(&b, "[INTRO MUSIC - %d seconds]\n\n", g.show.IntroMusicDuration)

	switch speakers.Format {
	case domain.FormatInterview:
		fmt.Fprintf(&b, "HOST: Welcome back to %s, I'm %s, and this is the show where %s.\n\n",
			g.show.ShowName, speakers.HostName, g.show.Tagline)
		b.WriteString("[MUSIC FADES]\n\n")
		fmt.Fprintf(&b, "HOST: Joining me today is %s, and we've got a great conversation ahead.\n\n", speakers.GuestName)
		fmt.Fprintf(&b, "GUEST: Thanks for having me, %s. I'm excited to dig into this.\n\n", speakers.HostName)
		fmt.Fprintf(&b, "HOST: In today's episode, we're diving deep into some fascinating insights about %s.\n\n", topicsPhrase)
		fmt.Fprintf(&b, "We'll explore %s, and by the end of this episode, you'll have a much clearer understanding of how these developments might impact your world.\n\n", preview)

	case domain.FormatMultiHost:
		fmt.Fprintf(&b, "HOST: Welcome back to %s, I'm %s.\n\n", g.show.ShowName, speakers.HostName)
		fmt.Fprintf(&b, "CO-HOST: And I'm %s. This is the show where %s.\n\n", speakers.CoHostName, g.show.Tagline)
		b.WriteString("[MUSIC FADES]\n\n")
		fmt.Fprintf(&b, "HOST: In today's episode, we're diving deep into some fascinating insights about %s.\n\n", topicsPhrase)
		fmt.Fprintf(&b, "CO-HOST: We'll explore %s, and by the end of this episode, you'll have a much clearer understanding of how these developments might impact your world.\n\n", preview)

	default:
		fmt.Fprintf(&b, "HOST: Welcome back to %s, I'm %s, and this is the show where %s.\n\n",
			g.show.ShowName, speakers.HostName, g.show.Tagline)
		b.WriteString("[MUSIC FADES]\n\n")
		fmt.Fprintf(&b, "HOST: In today's episode, we're diving deep into some fascinating insights about %s.\n\n", topicsPhrase)
		fmt.Fprintf(&b, "We'll explore %s, and by the end of this episode, you'll have a much clearer understanding of how these developments might impact your world.\n\n", preview)
	}

	b.WriteString("[TRANSITION SOUND]\n\nSo let's jump right in.")

	return domain.IntroSection{
		Script:            b.String(),
		EstimatedDuration: introDuration,
		MusicCues: []domain.MusicCue{
			{Type: "intro_music", Duration: g.show.IntroMusicDuration},
			{Type: "transition_sound", Timing: "after_preview"},
		},
		TopicsPreview: topics,
	}
}

// episodePreview builds the natural-language preview phrase from the
// classified types of the first few segments.
func episodePreview(segments []domain.Segment) string {
	var items []string
	for _, s := range segments {
		if len(items) == previewSegments || s.ID > previewSegments {
			break
		}
		switch s.Type {
		case domain.SegmentData:
			items = append(items, "some surprising statistics")
		case domain.SegmentNarrative:
			items = append(items, "a compelling case study")
		case domain.SegmentQA:
			items = append(items, "answers to important questions")
		default:
			if len(s.TopicKeywords) > 0 {
				items = append(items, "insights about "+s.TopicKeywords[0])
			}
		}
	}

	return joinNatural(items, "fascinating insights")
}
