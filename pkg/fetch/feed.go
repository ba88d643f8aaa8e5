package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// fetchPodcastFeed retrieves a podcast RSS/Atom feed and uses one
// episode's description as the transcript source. URLs that do not
// look like feeds are treated as episode web pages instead.
func (f *Fetcher) fetchPodcastFeed(ctx context.Context, url string, opts Options) (*Result, error) {
	if !looksLikeFeed(url) {
		return f.fetchArticle(ctx, url, SourcePodcastRSS)
	}

	feed, err := gofeed.NewParser().ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}
	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("feed contains no items")
	}

	index := opts.EpisodeIndex
	if index < 0 || index >= len(feed.Items) {
		index = 0
	}
	entry := feed.Items[index]

	transcript := entry.Description
	if transcript == "" {
		transcript = entry.Content
	}
	if transcript == "" {
		return nil, fmt.Errorf("feed entry %d has no description or content", index)
	}

	return &Result{
		Transcript: stripHTML(transcript),
		Title:      entry.Title,
		Metadata: map[string]string{
			"episode_url": entry.Link,
			"published":   entry.Published,
		},
	}, nil
}

func looksLikeFeed(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasSuffix(lower, ".rss") ||
		strings.HasSuffix(lower, ".xml") ||
		strings.Contains(lower, "rss")
}

// stripHTML reduces an HTML fragment to its text content.
func stripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}
