// Package fetch retrieves transcript text from external content
// sources: video transcripts, news and web articles, podcast feeds and
// published speeches. Fetching is never required for the main
// transform; callers fall back to manual input on failure.
package fetch

import (
	"context"
	"fmt"
	"time"

	"podscript/pkg/httpclient"
)

// Source identifies a supported content source type.
type Source string

const (
	SourceYouTube     Source = "youtube"
	SourceNewsArticle Source = "news_url"
	SourceWebArticle  Source = "web_article"
	SourcePodcastRSS  Source = "podcast_rss"
	SourceSpeechText  Source = "speech_text"
	SourcePDF         Source = "pdf_url"
)

// Sources lists every supported source type.
func Sources() []Source {
	return []Source{
		SourceYouTube,
		SourceNewsArticle,
		SourceWebArticle,
		SourcePodcastRSS,
		SourceSpeechText,
		SourcePDF,
	}
}

// Options carries per-fetch options.
type Options struct {
	// EpisodeIndex selects a feed entry for podcast_rss sources.
	// Out-of-range values fall back to the most recent entry.
	EpisodeIndex int
}

// Result is the outcome of a successful fetch.
type Result struct {
	Transcript string            `json:"transcript"`
	Title      string            `json:"title,omitempty"`
	SourceURL  string            `json:"source_url"`
	Source     Source            `json:"source_type"`
	WordCount  int               `json:"word_count,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	FetchedAt  string            `json:"fetched_at"`
}

// Fetcher retrieves transcript content from external sources.
type Fetcher struct {
	client *httpclient.HTTPClient
}

// NewFetcher creates a content fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{client: httpclient.NewClient(httpclient.BrowserClient)}
}

// Fetch retrieves content from url according to the source type. Each
// source type has a dedicated adapter; unknown types are rejected.
func (f *Fetcher) Fetch(ctx context.Context, url string, src Source, opts Options) (*Result, error) {
	var (
		result *Result
		err    error
	)

	switch src {
	case SourceYouTube:
		result, err = f.fetchYouTube(ctx, url)
	case SourceNewsArticle, SourceWebArticle:
		result, err = f.fetchArticle(ctx, url, src)
	case SourcePodcastRSS:
		result, err = f.fetchPodcastFeed(ctx, url, opts)
	case SourceSpeechText:
		result, err = f.fetchSpeech(ctx, url)
	case SourcePDF:
		return nil, fmt.Errorf("pdf content extraction not supported; convert the PDF to text first")
	default:
		return nil, fmt.Errorf("unsupported source type: %q", src)
	}

	if err != nil {
		return nil, fmt.Errorf("fetch %s from %s: %w", src, url, err)
	}

	result.SourceURL = url
	result.Source = src
	result.FetchedAt = time.Now().Format(time.RFC3339)
	return result, nil
}
