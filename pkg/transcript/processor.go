package transcript

import (
	"time"

	"podscript/pkg/domain"
)

// Processor is the combined clean-and-segment entry point of the
// pipeline. The zero value is ready to use.
type Processor struct {
	// now is swappable for tests.
	now func() time.Time
}

// NewProcessor creates a transcript processor.
func NewProcessor() *Processor {
	return &Processor{now: time.Now}
}

// Process cleans raw transcript text and segments the result. It never
// fails: empty or unusable input produces a successful result with zero
// segments, which downstream consumers must handle.
func (p *Processor) Process(raw string) *domain.ProcessedTranscript {
	now := time.Now
	if p.now != nil {
		now = p.now
	}

	cleaned := Clean(raw)
	segments := Segment(cleaned)

	total := 0.0
	for _, s := range segments {
		total += s.EstimatedDuration
	}

	return &domain.ProcessedTranscript{
		OriginalLength:    len(raw),
		CleanedLength:     len(cleaned),
		CleanedText:       cleaned,
		Segments:          segments,
		TotalSegments:     len(segments),
		EstimatedDuration: total,
		ProcessedAt:       now().Format(time.RFC3339),
		Status:            "success",
	}
}
