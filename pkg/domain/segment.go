package domain

// SegmentType classifies the content of a transcript segment.
type SegmentType string

const (
	SegmentIntroduction SegmentType = "introduction"
	SegmentConclusion   SegmentType = "conclusion"
	SegmentQA           SegmentType = "qa"
	SegmentData         SegmentType = "data"
	SegmentNarrative    SegmentType = "narrative"
	SegmentContent      SegmentType = "content"
)

// Segment is one classified, duration-estimated unit of transcript content,
// corresponding to one paragraph of cleaned text. Segments are created once
// by the segmenter and never mutated afterwards.
type Segment struct {
	// ID is a 1-based ordering key assigned in source order.
	ID int `json:"id"`

	// Text is the cleaned paragraph text. Always non-empty.
	Text string `json:"text"`

	// WordCount is derived from Text.
	WordCount int `json:"word_count"`

	// EstimatedDuration is the estimated speaking time in minutes,
	// based on a 150 words-per-minute rate, rounded to 2 decimals.
	EstimatedDuration float64 `json:"estimated_duration"`

	// TopicKeywords holds up to 10 lowercase terms in first-occurrence order.
	TopicKeywords []string `json:"topic_keywords"`

	// Type is the first-match classification of the paragraph.
	Type SegmentType `json:"segment_type"`
}

// ProcessedTranscript is the result of cleaning and segmenting a raw
// transcript. It is the wire shape returned by the process-transcript
// operation.
type ProcessedTranscript struct {
	OriginalLength    int       `json:"original_length"`
	CleanedLength     int       `json:"cleaned_length"`
	CleanedText       string    `json:"cleaned_text"`
	Segments          []Segment `json:"segments"`
	TotalSegments     int       `json:"total_segments"`
	EstimatedDuration float64   `json:"estimated_duration"`
	ProcessedAt       string    `json:"processed_at"`
	Status            string    `json:"status"`
}
