package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// speechSelectors are tried before the generic article cascade when
// extracting a published speech or address.
var speechSelectors = []string{
	".speech-content",
	".transcript",
	".remarks",
	".speech-text",
	".address-content",
}

// fetchSpeech retrieves a speech transcript from a government or
// official source page.
func (f *Fetcher) fetchSpeech(ctx context.Context, url string) (*Result, error) {
	html, err := f.fetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	stripChrome(doc)

	text := ""
	for _, selector := range speechSelectors {
		content := doc.Find(selector).First()
		if content.Length() > 0 {
			text = strings.TrimSpace(content.Text())
			break
		}
	}
	if text == "" {
		text = extractArticleText(doc)
	}
	if text == "" {
		return nil, fmt.Errorf("no speech content found")
	}

	return &Result{
		Transcript: text,
		Title:      extractTitle(doc),
		WordCount:  len(strings.Fields(text)),
	}, nil
}
