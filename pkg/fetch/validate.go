package fetch

import (
	"context"
	"fmt"
	"strings"
)

// Validation reports whether a URL looks usable for a source type.
// Warnings are advisory; an invalid result means the fetch is certain
// to fail.
type Validation struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
}

// ValidateURL checks a URL against the expectations of a source type
// and probes its accessibility with a HEAD request.
func (f *Fetcher) ValidateURL(ctx context.Context, url string, src Source) Validation {
	v := Validation{Valid: true}

	switch src {
	case SourceYouTube:
		if !strings.Contains(url, "youtube.com") && !strings.Contains(url, "youtu.be") {
			v.Valid = false
			v.Warnings = append(v.Warnings, "URL does not appear to be a YouTube URL")
		}
	case SourcePodcastRSS:
		if !looksLikeFeed(url) {
			v.Warnings = append(v.Warnings, "URL does not look like an RSS feed; it will be fetched as a web page")
		}
	case SourcePDF:
		v.Valid = false
		v.Warnings = append(v.Warnings, "pdf content extraction not supported")
		return v
	}

	resp, err := f.client.Head(ctx, url)
	if err != nil {
		v.Warnings = append(v.Warnings, fmt.Sprintf("URL accessibility check failed: %v", err))
		return v
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("URL returned status code %d", resp.StatusCode))
	}

	return v
}
