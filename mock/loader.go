package mock

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.Loader = (*Loader)(nil)

// Loader is a mock implementation of webscrape.Loader.
// It counts calls so tests can assert that no retrieval happened.
type Loader struct {
	LoadFn func(ctx context.Context, url string) ([]*webscrape.Document, error)

	calls atomic.Int64
}

func (l *Loader) Load(ctx context.Context, url string) ([]*webscrape.Document, error) {
	l.calls.Add(1)
	return l.LoadFn(ctx, url)
}

// Calls returns the number of times Load was invoked.
func (l *Loader) Calls() int {
	return int(l.calls.Load())
}
