// Package trafilatura extracts the main content of a page using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/webscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text and HTML.
func (e *Extractor) Extract(rawHTML string) (*webscrape.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webscrape.Errorf(webscrape.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &webscrape.ExtractResult{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		Text:        result.ContentText,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
