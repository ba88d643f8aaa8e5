package fetch

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// videoIDPatterns cover the common YouTube URL shapes.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

var (
	pageTitlePattern    = regexp.MustCompile(`<title>([^<]+)</title>`)
	descriptionPattern  = regexp.MustCompile(`"shortDescription":"([^"]*)"`)
	captionTrackPattern = regexp.MustCompile(`"captionTracks":\s*\[\s*\{[^}]*?"baseUrl":\s*"([^"]+)"`)
)

// ExtractVideoID extracts the video ID from a YouTube URL.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("invalid YouTube URL: could not extract video ID from %q", url)
}

// fetchYouTube retrieves a video's caption transcript plus page
// metadata. The watch page embeds the caption-track URL; the track
// itself is timed-text XML.
func (f *Fetcher) fetchYouTube(ctx context.Context, url string) (*Result, error) {
	videoID, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	watchURL := "https://www.youtube.com/watch?v=" + videoID
	page, err := f.fetchHTML(ctx, watchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}

	trackURL, err := captionTrackURL(page)
	if err != nil {
		return nil, err
	}

	captions, err := f.fetchHTML(ctx, trackURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caption track: %w", err)
	}

	transcript, err := joinCaptions(captions)
	if err != nil {
		return nil, err
	}

	return &Result{
		Transcript: transcript,
		Title:      pageTitle(page),
		WordCount:  len(strings.Fields(transcript)),
		Metadata: map[string]string{
			"video_id":    videoID,
			"url":         watchURL,
			"description": pageDescription(page),
		},
	}, nil
}

// captionTrackURL extracts the first caption-track URL embedded in the
// watch page's player config.
func captionTrackURL(page string) (string, error) {
	m := captionTrackPattern.FindStringSubmatch(page)
	if m == nil {
		return "", fmt.Errorf("no caption tracks found; the video may not have a transcript")
	}

	// The URL is embedded inside a JSON string literal.
	var trackURL string
	if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &trackURL); err != nil {
		return "", fmt.Errorf("failed to decode caption track URL: %w", err)
	}
	return trackURL, nil
}

// timedText is the caption-track XML shape.
type timedText struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// joinCaptions combines timed-text caption entries into one transcript
// string.
func joinCaptions(captionXML string) (string, error) {
	var tt timedText
	if err := xml.Unmarshal([]byte(captionXML), &tt); err != nil {
		return "", fmt.Errorf("failed to parse caption XML: %w", err)
	}
	if len(tt.Texts) == 0 {
		return "", fmt.Errorf("caption track is empty")
	}

	parts := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Value))
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

func pageTitle(page string) string {
	m := pageTitlePattern.FindStringSubmatch(page)
	if m == nil {
		return "Unknown"
	}
	title := html.UnescapeString(m[1])
	return strings.TrimSpace(strings.TrimSuffix(title, " - YouTube"))
}

func pageDescription(page string) string {
	m := descriptionPattern.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	var description string
	if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &description); err != nil {
		return m[1]
	}
	return description
}
