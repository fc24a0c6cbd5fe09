// Package scrape implements the fetch-extract-truncate pipeline behind the
// scrape API.
package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/webscrape"
)

// Ensure WebLoader implements webscrape.Loader at compile time.
var _ webscrape.Loader = (*WebLoader)(nil)

// WebLoader loads a single page by fetching its HTML and extracting its
// text. When a Converter is set, the extracted content HTML is converted
// to Markdown instead of using the extractor's plain text; a page with no
// content HTML then loads as an empty document.
type WebLoader struct {
	fetcher   webscrape.Fetcher
	extractor webscrape.Extractor
	converter webscrape.Converter
}

// LoaderOption configures a WebLoader.
type LoaderOption func(*WebLoader)

// WithConverter renders page content through c.
func WithConverter(c webscrape.Converter) LoaderOption {
	return func(l *WebLoader) {
		l.converter = c
	}
}

// NewWebLoader creates a new WebLoader with the given dependencies.
func NewWebLoader(fetcher webscrape.Fetcher, extractor webscrape.Extractor, opts ...LoaderOption) *WebLoader {
	l := &WebLoader{
		fetcher:   fetcher,
		extractor: extractor,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches url and returns its single document. An empty response
// body yields no documents.
func (l *WebLoader) Load(ctx context.Context, url string) ([]*webscrape.Document, error) {
	html, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if html == "" {
		return nil, nil
	}

	result, err := l.extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	content, err := l.content(result)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", url, err)
	}

	return []*webscrape.Document{{
		PageContent: content,
		Metadata: webscrape.DocumentMetadata{
			Source:      url,
			Title:       result.Title,
			Description: result.Description,
			Language:    result.Language,
		},
	}}, nil
}

func (l *WebLoader) content(result *webscrape.ExtractResult) (string, error) {
	if l.converter == nil {
		return result.Text, nil
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return "", nil
	}
	return l.converter.Convert(result.ContentHTML)
}
