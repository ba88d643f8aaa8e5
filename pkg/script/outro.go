package script

import (
	"fmt"
	"strings"

	"podscript/pkg/domain"
)

// transitionMusicSeconds is the fixed lead-in music before the outro.
const transitionMusicSeconds = 5

// generateOutro builds the closing block: recap, key takeaway,
// call-to-action and teaser, templated by the resolved speaker format.
func (g *Generator) generateOutro(segments []domain.Segment, speakers domain.SpeakerConfig) domain.OutroSection {
	topics := leadTopics(segments, 3)

	topicsPhrase := "these fascinating developments"
	if len(topics) > 0 {
		topicsPhrase = strings.Join(topics, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[TRANSITION MUSIC - %d seconds]\n\n", transitionMusicSeconds)

	fmt.Fprintf(&b, "HOST: So there you have it - we've covered a lot of ground today, from %s and everything in between.\n\n", topicsPhrase)
	fmt.Fprintf(&b, "HOST: The key takeaway? %s\n\n[PAUSE]\n\n", keyTakeaway(segments))

	switch speakers.Format {
	case domain.FormatInterview:
		fmt.Fprintf(&b, "HOST: Before we go - %s, thank you so much for joining me today.\n\n", speakers.GuestName)
		b.WriteString("GUEST: It's been a pleasure. Thanks for having me.\n\n")
	case domain.FormatMultiHost:
		fmt.Fprintf(&b, "CO-HOST: That covers everything we wanted to get through today - and there's plenty more where that came from.\n\n")
	}

	if g.show.CallToAction {
		fmt.Fprintf(&b, "HOST: If you found today's episode valuable, please subscribe to %s wherever you get your podcasts, and leave us a review - it really helps other listeners discover the show.\n\n", g.show.ShowName)
	}

	b.WriteString("HOST: Next week, we'll be diving into [NEXT EPISODE TEASER], so make sure you're subscribed so you don't miss it.\n\n")
	b.WriteString("HOST: Until then, keep exploring, keep questioning, and keep pushing the boundaries of what's possible.\n\n")

	switch speakers.Format {
	case domain.FormatMultiHost:
		fmt.Fprintf(&b, "HOST: I'm %s.\n\nCO-HOST: And I'm %s. Thanks for listening to %s.\n\n",
			speakers.HostName, speakers.CoHostName, g.show.ShowName)
	default:
		fmt.Fprintf(&b, "HOST: I'm %s, thanks for listening to %s.\n\n", speakers.HostName, g.show.ShowName)
	}

	fmt.Fprintf(&b, "[OUTRO MUSIC - %d seconds]", g.show.OutroMusicDuration)

	return domain.OutroSection{
		Script:            b.String(),
		EstimatedDuration: outroDuration,
		MusicCues: []domain.MusicCue{
			{Type: "transition_music", Duration: transitionMusicSeconds},
			{Type: "outro_music", Duration: g.show.OutroMusicDuration},
		},
		CallToAction: g.show.CallToAction,
	}
}

// keyTakeaway composes the one-sentence takeaway from the presence of
// data-type and narrative-type segments.
func keyTakeaway(segments []domain.Segment) string {
	if len(segments) == 0 {
		return "The future is full of exciting possibilities."
	}

	hasData, hasNarrative := false, false
	for _, s := range segments {
		switch s.Type {
		case domain.SegmentData:
			hasData = true
		case domain.SegmentNarrative:
			hasNarrative = true
		}
	}

	switch {
	case hasData && hasNarrative:
		return "The data tells a clear story, and the real-world examples show us exactly how this impacts our daily lives."
	case hasData:
		return "The numbers don't lie - we're witnessing a significant shift that deserves our attention."
	case hasNarrative:
		return "These real-world examples show just how much is already changing on the ground."
	default:
		return "These insights give us a glimpse into what the future might hold."
	}
}
