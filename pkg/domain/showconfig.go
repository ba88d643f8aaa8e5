package domain

import "fmt"

// SpeakerFormat is the conversational structure governing how dialogue
// is templated in the generated script.
type SpeakerFormat string

const (
	FormatSingleHost SpeakerFormat = "single_host"
	FormatInterview  SpeakerFormat = "interview"
	FormatMultiHost  SpeakerFormat = "multi_host"
)

// Placeholder role labels used when no name is configured.
const (
	DefaultHostLabel   = "HOST"
	DefaultGuestLabel  = "GUEST"
	DefaultCoHostLabel = "CO-HOST"
)

// SpeakerPrefs holds the configured speaker preferences of a show.
// Unset fields are resolved to placeholder role labels.
type SpeakerPrefs struct {
	Format     SpeakerFormat `json:"format,omitempty"`
	HostName   string        `json:"host_name,omitempty"`
	GuestName  string        `json:"guest_name,omitempty"`
	CoHostName string        `json:"co_host_name,omitempty"`
}

// SpeakerConfig is the resolved speaker format for one script generation.
// It is computed once from ShowConfig plus content signals and is
// immutable afterwards.
type SpeakerConfig struct {
	Format       SpeakerFormat `json:"format"`
	HostName     string        `json:"host_name"`
	GuestName    string        `json:"guest_name,omitempty"`
	CoHostName   string        `json:"co_host_name,omitempty"`
	Participants []string      `json:"participants"`
}

// ShowConfig is the show identity and timing configuration supplied by
// the caller. It is read-only to the generation pipeline.
type ShowConfig struct {
	ShowName string `json:"show_name"`
	HostName string `json:"host_name"`
	Tagline  string `json:"tagline"`

	// IntroMusicDuration and OutroMusicDuration are in seconds.
	IntroMusicDuration int `json:"intro_music_duration"`
	OutroMusicDuration int `json:"outro_music_duration"`

	// TargetDuration is the desired episode length in minutes.
	TargetDuration int `json:"target_duration"`

	SponsorSegments bool `json:"sponsor_segments"`
	CallToAction    bool `json:"call_to_action"`

	Speakers SpeakerPrefs `json:"speakers,omitempty"`
}

// DefaultShowConfig returns the stock show configuration used when the
// caller supplies none.
func DefaultShowConfig() ShowConfig {
	return ShowConfig{
		ShowName:           "AI Insights Podcast",
		HostName:           "Your Host",
		Tagline:            "Exploring the future of artificial intelligence",
		IntroMusicDuration: 10,
		OutroMusicDuration: 15,
		TargetDuration:     30,
		SponsorSegments:    false,
		CallToAction:       true,
	}
}

// Validate checks the configuration for contract violations. A failing
// ShowConfig indicates caller misuse and is the one error category the
// generation pipeline propagates as a hard failure.
func (c ShowConfig) Validate() error {
	if c.ShowName == "" {
		return fmt.Errorf("show config: show_name must not be empty")
	}
	if c.IntroMusicDuration < 0 {
		return fmt.Errorf("show config: intro_music_duration must not be negative, got %d", c.IntroMusicDuration)
	}
	if c.OutroMusicDuration < 0 {
		return fmt.Errorf("show config: outro_music_duration must not be negative, got %d", c.OutroMusicDuration)
	}
	if c.TargetDuration < 0 {
		return fmt.Errorf("show config: target_duration must not be negative, got %d", c.TargetDuration)
	}
	switch c.Speakers.Format {
	case "", FormatSingleHost, FormatInterview, FormatMultiHost:
	default:
		return fmt.Errorf("show config: unknown speaker format %q", c.Speakers.Format)
	}
	return nil
}
