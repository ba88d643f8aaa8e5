package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// articleSelectors are tried in order when locating the main content
// container of an article page.
var articleSelectors = []string{
	"article",
	".article-content",
	".article-body",
	".post-content",
	".entry-content",
	".content",
	"main",
	".main-content",
}

// titleSelectors are tried in order when extracting the page title.
var titleSelectors = []string{
	"h1",
	".article-title",
	".post-title",
	".entry-title",
	"title",
}

// fetchArticle retrieves an article page and extracts its main text.
func (f *Fetcher) fetchArticle(ctx context.Context, url string, src Source) (*Result, error) {
	html, err := f.fetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	stripChrome(doc)

	text := extractArticleText(doc)
	if text == "" {
		// Selector cascade found nothing usable; let readability take
		// the whole page apart.
		if article, rerr := readability.FromReader(strings.NewReader(html), nil); rerr == nil {
			text = strings.TrimSpace(article.TextContent)
		}
	}
	if text == "" {
		return nil, fmt.Errorf("no article content found")
	}

	return &Result{
		Transcript: text,
		Title:      extractTitle(doc),
		WordCount:  len(strings.Fields(text)),
	}, nil
}

func (f *Fetcher) fetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// stripChrome removes navigation and other non-content elements.
func stripChrome(doc *goquery.Document) {
	doc.Find("script, style, nav, header, footer, aside").Remove()
}

// extractArticleText walks the selector cascade and collects paragraph
// text from the first container that yields substantial content.
func extractArticleText(doc *goquery.Document) string {
	for _, selector := range articleSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		var paragraphs []string
		container.Find("p, div").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 30 {
				paragraphs = append(paragraphs, text)
			}
		})

		if len(paragraphs) > 0 {
			return strings.Join(paragraphs, "\n\n")
		}
	}

	// Fallback: all paragraphs on the page, with a longer threshold to
	// keep boilerplate out.
	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 50 {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n\n")
}

// extractTitle walks the title cascade, falling back to OpenGraph and
// meta tags.
func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if len(title) > 5 {
			return title
		}
	}

	if title, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if title, ok := doc.Find("meta[name='title']").Attr("content"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}

	return "Untitled Article"
}
