package domain

// MusicCue is a production annotation for a music or sound event.
type MusicCue struct {
	Type     string `json:"type"`
	Duration int    `json:"duration,omitempty"`
	Timing   string `json:"timing,omitempty"`
}

// IntroSection is the scripted opening block of an episode.
type IntroSection struct {
	Script            string     `json:"script"`
	EstimatedDuration float64    `json:"estimated_duration"`
	MusicCues         []MusicCue `json:"music_cues"`
	TopicsPreview     []string   `json:"topics_preview"`
}

// ContentBlock is one polished main-content block derived from a segment.
type ContentBlock struct {
	SegmentID         int         `json:"segment_id"`
	Type              SegmentType `json:"type"`
	Script            string      `json:"script"`
	EstimatedDuration float64     `json:"estimated_duration"`
	ProductionNotes   []string    `json:"production_notes"`
	Keywords          []string    `json:"keywords"`
}

// Transition bridges two adjacent segments.
type Transition struct {
	BetweenSegments [2]int `json:"between_segments"`
	Script          string `json:"script"`
	AudioCue        string `json:"audio_cue"`
}

// OutroSection is the scripted closing block of an episode.
type OutroSection struct {
	Script            string     `json:"script"`
	EstimatedDuration float64    `json:"estimated_duration"`
	MusicCues         []MusicCue `json:"music_cues"`
	CallToAction      bool       `json:"call_to_action"`
}

// TimestampEntry is one row of the show-notes timestamp table.
type TimestampEntry struct {
	Time        string `json:"time"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// Resource is a suggested companion link for the show notes.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ShowNotes is the published companion text accompanying an episode.
type ShowNotes struct {
	EpisodeSummary      string           `json:"episode_summary"`
	KeyPoints           []string         `json:"key_points"`
	Timestamps          []TimestampEntry `json:"timestamps"`
	Resources           []Resource       `json:"resources"`
	GuestInfo           string           `json:"guest_info,omitempty"`
	SocialMediaSnippets []string         `json:"social_media_snippets"`
}

// Metadata carries the episode publishing metadata.
type Metadata struct {
	EpisodeNumber   int      `json:"episode_number,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category"`
	Explicit        bool     `json:"explicit"`
	PublicationDate string   `json:"publication_date"`
}

// ScriptDocument is the assembled script output: the ordered sections
// plus the speaker configuration that governed templating. It is
// produced once per generation call and never mutated.
type ScriptDocument struct {
	Intro       IntroSection   `json:"intro"`
	MainContent []ContentBlock `json:"main_content"`
	Transitions []Transition   `json:"transitions"`
	Outro       OutroSection   `json:"outro"`
	ShowNotes   ShowNotes      `json:"show_notes"`
	Metadata    Metadata       `json:"metadata"`
	Speakers    SpeakerConfig  `json:"speakers"`
}

// GenerationResult is the outermost result shape of script generation.
// Status is "success" or "error"; internal failures never escape as
// panics or raw errors past this boundary.
type GenerationResult struct {
	Status            string          `json:"status"`
	Message           string          `json:"message,omitempty"`
	Script            string          `json:"script,omitempty"`
	Sections          *ScriptDocument `json:"sections,omitempty"`
	EstimatedDuration float64         `json:"estimated_duration,omitempty"`
	GeneratedAt       string          `json:"generated_at"`
}
