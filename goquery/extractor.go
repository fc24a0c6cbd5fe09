// Package goquery extracts the full visible text of an HTML page using goquery.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webscrape"
)

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Extractor)(nil)

// nonTextSelector matches elements whose contents are never page text.
const nonTextSelector = "script, style, noscript, template"

// Extractor returns every text node of the document in document order,
// with no boilerplate removal.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns its text along with title,
// meta description and declared language.
func (e *Extractor) Extract(rawHTML string) (*webscrape.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find(nonTextSelector).Remove()

	contentHTML, err := doc.Find("body").Html()
	if err != nil {
		return nil, err
	}

	return &webscrape.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: metaContent(doc, "description"),
		Language:    strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
		Text:        doc.Text(),
		ContentHTML: contentHTML,
	}, nil
}

// metaContent returns the content of <meta name=name>, falling back to
// the OpenGraph property of the same name.
func metaContent(doc *goquery.Document, name string) string {
	if v, ok := doc.Find(`meta[name="` + name + `"]`).First().Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(doc.Find(`meta[property="og:` + name + `"]`).First().AttrOr("content", ""))
}
