package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/webscrape"
)

// DefaultTimeout bounds a whole retrieval, including extraction.
const DefaultTimeout = 30 * time.Second

// Ensure Pipeline implements webscrape.Scraper at compile time.
var _ webscrape.Scraper = (*Pipeline)(nil)

// Pipeline validates a request, loads the page on a separate goroutine,
// and trims and bounds its content. It holds no per-request state and is
// safe for concurrent use.
type Pipeline struct {
	loader  webscrape.Loader
	timeout time.Duration
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithTimeout sets the deadline for a single retrieval.
// A zero or negative value disables the deadline.
func WithTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		p.timeout = d
	}
}

// NewPipeline creates a new Pipeline that retrieves pages with loader.
func NewPipeline(loader webscrape.Loader, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		loader:  loader,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// loadResult carries the outcome of a load back from its worker goroutine.
type loadResult struct {
	docs []*webscrape.Document
	err  error
}

// Scrape runs the pipeline for req. It never returns nil and never panics
// on loader failure; every failure is reported in the Result.
func (p *Pipeline) Scrape(ctx context.Context, req *webscrape.ScrapeRequest) *webscrape.Result {
	result := &webscrape.Result{URL: req.URL}

	var invalid *webscrape.Error
	if err := webscrape.ValidateURL(req.URL); errors.As(err, &invalid) {
		result.Err = invalid
		return result
	}

	docs, err := p.load(ctx, req.URL)
	if err != nil {
		result.Err = fetchError(err)
		return result
	}
	if len(docs) == 0 || docs[0] == nil {
		result.Err = webscrape.Errorf(webscrape.ENOCONTENT, webscrape.NoContentMessage)
		return result
	}

	result.Content = webscrape.Truncate(strings.TrimSpace(docs[0].PageContent))
	return result
}

// fetchError classifies a loader failure as EFETCH. Application errors keep
// their message without the code prefix.
func fetchError(err error) *webscrape.Error {
	if webscrape.ErrorCode(err) == webscrape.EINTERNAL {
		return webscrape.WrapError(webscrape.EFETCH, err)
	}
	return &webscrape.Error{
		Code:    webscrape.EFETCH,
		Message: webscrape.ErrorMessage(err),
		Err:     err,
	}
}

// load runs the loader on its own goroutine and waits for it or for the
// deadline, whichever comes first. An abandoned worker finishes on its own
// once its context is canceled.
func (p *Pipeline) load(ctx context.Context, url string) ([]*webscrape.Document, error) {
	var cancel context.CancelFunc
	if p.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	ch := make(chan loadResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- loadResult{err: fmt.Errorf("panic while loading %s: %v", url, r)}
			}
		}()
		docs, err := p.loader.Load(ctx, url)
		ch <- loadResult{docs: docs, err: err}
	}()

	select {
	case res := <-ch:
		return res.docs, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("fetching %s: %w", url, ctx.Err())
	}
}
