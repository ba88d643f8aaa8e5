package domain

import "testing"

// TestShowConfigValidate verifies each contract check.
func TestShowConfigValidate(t *testing.T) {
	if err := DefaultShowConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ShowConfig)
	}{
		{"empty show name", func(c *ShowConfig) { c.ShowName = "" }},
		{"negative intro music", func(c *ShowConfig) { c.IntroMusicDuration = -1 }},
		{"negative outro music", func(c *ShowConfig) { c.OutroMusicDuration = -5 }},
		{"negative target duration", func(c *ShowConfig) { c.TargetDuration = -10 }},
		{"unknown speaker format", func(c *ShowConfig) { c.Speakers.Format = "roundtable" }},
	}

	for _, tt := range tests {
		cfg := DefaultShowConfig()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestShowConfigValidate_KnownFormats(t *testing.T) {
	for _, format := range []SpeakerFormat{"", FormatSingleHost, FormatInterview, FormatMultiHost} {
		cfg := DefaultShowConfig()
		cfg.Speakers.Format = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q should validate, got %v", format, err)
		}
	}
}
