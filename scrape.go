package webscrape

import (
	"context"
	"strings"
)

// MaxContentLength is the number of characters kept before truncation.
const MaxContentLength = 10000

// TruncationMarker is appended to content cut at MaxContentLength.
const TruncationMarker = "... [content truncated]"

// Messages returned to callers for failures detected by the service itself.
const (
	InvalidURLMessage = "Invalid URL format. Must start with http:// or https://"
	NoContentMessage  = "No content found on the page"
)

// ScrapeRequest is the body of a scrape call.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse is the wire shape of a scrape outcome.
// Exactly one of Content and Error is set, as determined by Success.
type ScrapeResponse struct {
	Success bool    `json:"success"`
	URL     string  `json:"url"`
	Content *string `json:"content,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Result is the outcome of a single scrape.
type Result struct {
	URL     string
	Content string

	// Err is nil on success. Its Code distinguishes invalid input,
	// empty content and retrieval failures.
	Err *Error
}

// Success reports whether the scrape produced content.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Kind returns the error code of a failed result, or "" on success.
func (r *Result) Kind() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Code
}

// Response shapes the result for the wire.
func (r *Result) Response() *ScrapeResponse {
	resp := &ScrapeResponse{
		Success: r.Success(),
		URL:     r.URL,
	}
	if r.Err != nil {
		msg := r.Err.Message
		resp.Error = &msg
		return resp
	}
	content := r.Content
	resp.Content = &content
	return resp
}

// Scraper turns a ScrapeRequest into a Result.
// Implementations never return a nil Result.
type Scraper interface {
	Scrape(ctx context.Context, req *ScrapeRequest) *Result
}

// ValidateURL returns an EINVALID error unless url starts with
// "http://" or "https://". The match is case-sensitive.
func ValidateURL(url string) error {
	if url == "" || !(strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")) {
		return Errorf(EINVALID, InvalidURLMessage)
	}
	return nil
}

// Truncate cuts s to MaxContentLength characters and appends
// TruncationMarker when s is longer than that. Characters are Unicode
// code points; the cut may fall mid-word.
func Truncate(s string) string {
	if len(s) <= MaxContentLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxContentLength {
			return s[:i] + TruncationMarker
		}
		n++
	}
	return s
}
