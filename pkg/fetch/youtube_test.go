package fetch

import (
	"strings"
	"testing"
)

// TestExtractVideoID verifies the supported YouTube URL shapes.
func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=abc123&t=42s", "abc123"},
	}

	for _, tt := range tests {
		got, err := ExtractVideoID(tt.url)
		if err != nil {
			t.Errorf("ExtractVideoID(%q) failed: %v", tt.url, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	if _, err := ExtractVideoID("https://vimeo.com/12345"); err == nil {
		t.Fatal("expected error for non-YouTube URL")
	}
}

// TestCaptionTrackURL verifies extraction of the JSON-escaped track URL
// from player config.
func TestCaptionTrackURL(t *testing.T) {
	page := `var ytInitialPlayerResponse = {"captions": {"playerCaptionsTracklistRenderer":
		{"captionTracks": [{"baseUrl": "https://www.youtube.com/api/timedtext?v=abc&lang=en", "name": "English"}]}}};`

	got, err := captionTrackURL(page)
	if err != nil {
		t.Fatalf("captionTrackURL failed: %v", err)
	}
	want := "https://www.youtube.com/api/timedtext?v=abc&lang=en"
	if got != want {
		t.Fatalf("captionTrackURL = %q, want %q", got, want)
	}
}

func TestCaptionTrackURL_NoCaptions(t *testing.T) {
	if _, err := captionTrackURL("<html>no player config here</html>"); err == nil {
		t.Fatal("expected error when captions are missing")
	}
}

// TestJoinCaptions verifies timed-text parsing with entity unescaping.
func TestJoinCaptions(t *testing.T) {
	captionXML := `<?xml version="1.0" encoding="utf-8"?>
<transcript>
<text start="0.0" dur="2.5">Hello everyone</text>
<text start="2.5" dur="3.0">we&amp;#39;re talking about AI today</text>
<text start="5.5" dur="1.0">   </text>
</transcript>`

	got, err := joinCaptions(captionXML)
	if err != nil {
		t.Fatalf("joinCaptions failed: %v", err)
	}
	if !strings.Contains(got, "Hello everyone") {
		t.Errorf("transcript = %q", got)
	}
	if !strings.HasSuffix(got, "talking about AI today") {
		t.Errorf("whitespace-only entries should be dropped: %q", got)
	}
}

func TestJoinCaptions_Empty(t *testing.T) {
	if _, err := joinCaptions(`<transcript></transcript>`); err == nil {
		t.Fatal("expected error for empty caption track")
	}
}

func TestPageTitle(t *testing.T) {
	page := `<html><head><title>Great Interview - YouTube</title></head></html>`
	if got := pageTitle(page); got != "Great Interview" {
		t.Fatalf("pageTitle = %q, want Great Interview", got)
	}

	if got := pageTitle("<html></html>"); got != "Unknown" {
		t.Fatalf("pageTitle fallback = %q, want Unknown", got)
	}
}
