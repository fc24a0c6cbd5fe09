package webscrape

import "context"

// Document is a single loaded page.
type Document struct {
	// PageContent is the extracted text of the page.
	PageContent string

	Metadata DocumentMetadata
}

// DocumentMetadata describes where a Document came from.
type DocumentMetadata struct {
	Source      string `json:"source"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

// Loader retrieves the documents at a URL.
// A successful load may return zero documents when the remote resource is empty.
type Loader interface {
	Load(ctx context.Context, url string) ([]*Document, error)
}
