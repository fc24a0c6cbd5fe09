// Package readability extracts the main article of a page using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/webscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text.
func (e *Extractor) Extract(rawHTML string) (*webscrape.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webscrape.Errorf(webscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &webscrape.ExtractResult{
		Title:       article.Title,
		Description: article.Excerpt,
		Text:        article.TextContent,
		ContentHTML: article.Content,
	}, nil
}
