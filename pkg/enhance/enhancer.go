// Package enhance provides optional, best-effort text enhancement
// through generative backends. Enhancement is never required for the
// main transform: every failure degrades to the unmodified input.
package enhance

import (
	"context"
	"fmt"
	"time"
)

// Type selects the enhancement depth.
type Type string

const (
	// Comprehensive rewrites for clarity and structure.
	Comprehensive Type = "comprehensive"
	// Minimal fixes only grammar, punctuation and obvious fillers.
	Minimal Type = "minimal"
)

// DefaultTimeout bounds a single enhancement call.
const DefaultTimeout = 60 * time.Second

// Enhancer is the narrow capability the pipeline invokes for text
// enhancement. Implementations may block on network calls; callers
// bound them with a context deadline.
type Enhancer interface {
	Enhance(ctx context.Context, text string, kind Type) (string, error)
}

// Result carries either the enhanced text or the unmodified fallback
// with the reason enhancement did not happen. The failure mode is
// explicit rather than varying by error type.
type Result struct {
	Text           string `json:"text"`
	Enhanced       bool   `json:"enhanced"`
	Kind           Type   `json:"enhancement_type"`
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// WithFallback runs the enhancer under a bounded timeout and degrades
// gracefully: on any failure (including a nil enhancer) the result
// carries the original text and the reason. Backend failures never
// propagate as errors.
func WithFallback(ctx context.Context, e Enhancer, text string, kind Type, timeout time.Duration) Result {
	if e == nil {
		return Result{Text: text, Kind: kind, FallbackReason: "no enhancer configured"}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	enhanced, err := e.Enhance(ctx, text, kind)
	if err != nil {
		return Result{Text: text, Kind: kind, FallbackReason: err.Error()}
	}
	if enhanced == "" {
		return Result{Text: text, Kind: kind, FallbackReason: "backend returned empty text"}
	}

	return Result{Text: enhanced, Enhanced: true, Kind: kind}
}

// buildPrompt composes the enhancement prompt for the given depth.
func buildPrompt(text string, kind Type) string {
	prompt := fmt.Sprintf(`Please enhance the following transcript for podcast use. The transcript may contain:
- Filler words (um, uh, like, you know)
- Repetitive phrases
- Unclear sentences
- Missing punctuation
- Speaker attribution issues

Enhancement type: %s

Original transcript:
%s

Please provide an enhanced version that:
1. Removes unnecessary filler words
2. Improves clarity and flow
3. Maintains the original meaning and tone
4. Adds appropriate punctuation
5. Structures content logically
6. Preserves important emphasis and emotion

Enhanced transcript:`, kind, text)

	switch kind {
	case Comprehensive:
		prompt += `
Additionally:
- Break content into logical segments
- Add topic headings where appropriate
- Identify key quotes or soundbites
- Note any technical terms that might need explanation
`
	case Minimal:
		prompt += `
Focus only on:
- Basic grammar and punctuation corrections
- Removing obvious filler words
- Maintaining original structure
`
	}

	return prompt
}
