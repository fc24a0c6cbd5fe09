// Package http provides the HTTP side of webscrape: a Fetcher that retrieves
// static pages over net/http, and the Server exposing the scrape API.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/fwojciec/webscrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (compatible; webscrape/1.0)"

// Ensure Fetcher implements webscrape.Fetcher at compile time.
var _ webscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content from URLs using HTTP requests.
// It does not execute JavaScript. Fetcher is safe for concurrent use
// by multiple goroutines; all requests share one pooled client.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets how many bytes of a response body are read.
// Anything beyond is discarded.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithClient replaces the underlying client. The client's own Timeout
// takes precedence over WithTimeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the content at the given URL, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,text/plain;q=0.8,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isSupportedContentType(contentType) {
		return "", fmt.Errorf("unsupported content type %q for %s", contentType, url)
	}

	body := io.Reader(resp.Body)
	if f.maxBodySize > 0 {
		body = io.LimitReader(body, f.maxBodySize)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	// Decode to UTF-8 from the header charset or a <meta charset> in the first bytes.
	decoded, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("decoding body of %s: %w", url, err)
	}

	b, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// isSupportedContentType reports whether the media type is a textual
// document the extractors can handle. A missing header is accepted.
func isSupportedContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mediaType {
	case "text/html", "application/xhtml+xml", "application/xml", "text/xml", "text/plain":
		return true
	}
	return false
}
