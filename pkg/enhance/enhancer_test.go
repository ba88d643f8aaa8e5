package enhance

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeEnhancer struct {
	text string
	err  error
}

func (f *fakeEnhancer) Enhance(ctx context.Context, text string, kind Type) (string, error) {
	return f.text, f.err
}

// TestWithFallback_NilEnhancer verifies that a missing backend degrades
// to the original text with a reason.
func TestWithFallback_NilEnhancer(t *testing.T) {
	got := WithFallback(context.Background(), nil, "original", Comprehensive, 0)

	if got.Enhanced {
		t.Error("expected Enhanced false")
	}
	if got.Text != "original" {
		t.Errorf("text = %q, want original", got.Text)
	}
	if got.FallbackReason != "no enhancer configured" {
		t.Errorf("fallback reason = %q", got.FallbackReason)
	}
}

// TestWithFallback_BackendError verifies that backend failures never
// propagate as errors.
func TestWithFallback_BackendError(t *testing.T) {
	e := &fakeEnhancer{err: fmt.Errorf("rate limited")}

	got := WithFallback(context.Background(), e, "original", Minimal, time.Second)
	if got.Enhanced {
		t.Error("expected Enhanced false")
	}
	if got.Text != "original" {
		t.Errorf("text = %q, want original", got.Text)
	}
	if got.FallbackReason != "rate limited" {
		t.Errorf("fallback reason = %q", got.FallbackReason)
	}
}

// TestWithFallback_EmptyResult verifies that an empty backend answer
// counts as a failure.
func TestWithFallback_EmptyResult(t *testing.T) {
	got := WithFallback(context.Background(), &fakeEnhancer{text: ""}, "original", Minimal, time.Second)
	if got.Enhanced || got.Text != "original" {
		t.Errorf("expected fallback, got %+v", got)
	}
	if got.FallbackReason != "backend returned empty text" {
		t.Errorf("fallback reason = %q", got.FallbackReason)
	}
}

func TestWithFallback_Success(t *testing.T) {
	got := WithFallback(context.Background(), &fakeEnhancer{text: "polished"}, "original", Comprehensive, time.Second)

	if !got.Enhanced {
		t.Error("expected Enhanced true")
	}
	if got.Text != "polished" {
		t.Errorf("text = %q, want polished", got.Text)
	}
	if got.FallbackReason != "" {
		t.Errorf("fallback reason = %q, want empty", got.FallbackReason)
	}
	if got.Kind != Comprehensive {
		t.Errorf("kind = %q, want comprehensive", got.Kind)
	}
}

// TestBuildPrompt verifies the depth-specific prompt suffixes.
func TestBuildPrompt(t *testing.T) {
	comprehensive := buildPrompt("sample text", Comprehensive)
	if !strings.Contains(comprehensive, "sample text") {
		t.Error("prompt missing input text")
	}
	if !strings.Contains(comprehensive, "Add topic headings where appropriate") {
		t.Error("comprehensive prompt missing its suffix")
	}

	minimal := buildPrompt("sample text", Minimal)
	if !strings.Contains(minimal, "Basic grammar and punctuation corrections") {
		t.Error("minimal prompt missing its suffix")
	}
	if strings.Contains(minimal, "Add topic headings") {
		t.Error("minimal prompt must not carry the comprehensive suffix")
	}
}
