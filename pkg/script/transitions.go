package script

import "podscript/pkg/domain"

// transitionPair keys the transition table on adjacent segment types.
type transitionPair struct {
	current domain.SegmentType
	next    domain.SegmentType
}

// transitionLines is the fixed lookup of bridging lines for known
// segment-type pairs. Unmatched pairs fall back to a generic bridge.
var transitionLines = map[transitionPair]string{
	{domain.SegmentData, domain.SegmentNarrative}:       "HOST: Now, let me show you what this looks like in practice.",
	{domain.SegmentNarrative, domain.SegmentData}:       "HOST: The numbers behind this story are equally compelling.",
	{domain.SegmentIntroduction, domain.SegmentContent}: "[TRANSITION MUSIC - 3 seconds]",
	{domain.SegmentIntroduction, domain.SegmentData}:    "HOST: Let's start with what the numbers tell us.",
	{domain.SegmentContent, domain.SegmentConclusion}:   "HOST: Which brings us to where all of this is heading.",
	{domain.SegmentQA, domain.SegmentContent}:           "HOST: With that question answered, let's keep moving.",
}

const genericTransition = "HOST: But there's more to this story."

// generateTransitions produces one transition per adjacent segment
// pair; N segments yield N-1 transitions.
func (g *Generator) generateTransitions(segments []domain.Segment) []domain.Transition {
	if len(segments) < 2 {
		return []domain.Transition{}
	}

	transitions := make([]domain.Transition, 0, len(segments)-1)
	for i := 0; i < len(segments)-1; i++ {
		current, next := segments[i], segments[i+1]
		transitions = append(transitions, domain.Transition{
			BetweenSegments: [2]int{current.ID, next.ID},
			Script:          transitionScript(current.Type, next.Type),
			AudioCue:        audioCue(current.Type, next.Type),
		})
	}

	return transitions
}

func transitionScript(current, next domain.SegmentType) string {
	if line, ok := transitionLines[transitionPair{current, next}]; ok {
		return line
	}
	return genericTransition
}

// audioCue picks the transition sound by a simple precedence: a chime
// after data, a whoosh into narrative, otherwise the default.
func audioCue(current, next domain.SegmentType) string {
	switch {
	case current == domain.SegmentData:
		return "soft_chime"
	case next == domain.SegmentNarrative:
		return "gentle_whoosh"
	default:
		return "subtle_transition"
	}
}
