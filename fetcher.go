package webscrape

import "context"

// Fetcher retrieves the raw document at a URL.
type Fetcher interface {
	// Fetch issues a single GET against url and returns the decoded body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
