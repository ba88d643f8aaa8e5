package transcript

import "testing"

// TestClean_StripsTimestampsAndSpeakerTags verifies that bracketed
// timestamps and both styles of speaker labels are removed.
func TestClean_StripsTimestampsAndSpeakerTags(t *testing.T) {
	raw := "[00:12] HOST: Welcome to the show.\n\nSpeaker 1: theres a lot to cover."

	got := Clean(raw)
	want := "Welcome to the show.\n\nthere's a lot to cover."
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}

func TestClean_RemovesFillerWords(t *testing.T) {
	got := Clean("So, um, this topic is, uh, quite fascinating.")
	want := "So, this topic is, quite fascinating."
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}

// TestClean_AppliesCorrections verifies the contraction fixes for
// common transcription errors.
func TestClean_AppliesCorrections(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"theres no doubt", "there's no doubt"},
		{"were going to discuss this", "we're going to discuss this"},
		{"its a great topic", "it's a great topic"},
		{"youve seen this before", "you've seen this before"},
		{"weve covered this", "we've covered this"},
		{"theyre excited", "they're excited"},
	}

	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestClean_CorrectionNeedsContext verifies that "were" and "its" are
// only rewritten in the contexts where they are transcription errors.
func TestClean_CorrectionNeedsContext(t *testing.T) {
	got := Clean("The results were impressive and its design held up.")
	want := "The results were impressive and its design held up."
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}

// TestClean_PreservesParagraphBoundaries verifies that blank-line
// boundaries survive cleaning so the segmenter can split on them.
func TestClean_PreservesParagraphBoundaries(t *testing.T) {
	raw := "First paragraph  with   extra spaces.\n\n  \nSecond paragraph."

	got := Clean(raw)
	want := "First paragraph with extra spaces.\n\nSecond paragraph."
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}

func TestClean_EmptyInput(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Fatalf("Clean(\"\") = %q, want empty", got)
	}
	if got := Clean("   \n\n  \t "); got != "" {
		t.Fatalf("Clean(whitespace) = %q, want empty", got)
	}
}

// TestClean_DropsEmptiedParagraphs verifies that a paragraph consisting
// only of removable content disappears entirely.
func TestClean_DropsEmptiedParagraphs(t *testing.T) {
	raw := "Real content here.\n\n[00:01:23]\n\nMore real content."

	got := Clean(raw)
	want := "Real content here.\n\nMore real content."
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}
