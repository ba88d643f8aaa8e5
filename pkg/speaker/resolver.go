// Package speaker resolves which conversational format governs script
// templating for one generation call.
package speaker

import "podscript/pkg/domain"

// qaOverrideThreshold is the number of question/answer segments above
// which a single-host show is promoted to the interview format.
const qaOverrideThreshold = 2

// Resolve computes the speaker configuration for a script from the show
// configuration plus content signals. The base format comes from the
// configuration (defaulting to single host). The only automatic
// override: a single-host show with more than two qa-classified
// segments resolves to the interview format. All other configured
// formats are taken verbatim.
func Resolve(show domain.ShowConfig, segments []domain.Segment) domain.SpeakerConfig {
	format := show.Speakers.Format
	if format == "" {
		format = domain.FormatSingleHost
	}

	if format == domain.FormatSingleHost && countQA(segments) > qaOverrideThreshold {
		format = domain.FormatInterview
	}

	host := show.Speakers.HostName
	if host == "" {
		host = show.HostName
	}
	if host == "" {
		host = domain.DefaultHostLabel
	}

	cfg := domain.SpeakerConfig{
		Format:   format,
		HostName: host,
	}

	switch format {
	case domain.FormatInterview:
		cfg.GuestName = orDefault(show.Speakers.GuestName, domain.DefaultGuestLabel)
		cfg.Participants = []string{cfg.HostName, cfg.GuestName}
	case domain.FormatMultiHost:
		cfg.CoHostName = orDefault(show.Speakers.CoHostName, domain.DefaultCoHostLabel)
		cfg.Participants = []string{cfg.HostName, cfg.CoHostName}
	default:
		cfg.Participants = []string{cfg.HostName}
	}

	return cfg
}

func countQA(segments []domain.Segment) int {
	count := 0
	for _, s := range segments {
		if s.Type == domain.SegmentQA {
			count++
		}
	}
	return count
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
