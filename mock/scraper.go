package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of webscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, req *webscrape.ScrapeRequest) *webscrape.Result
}

func (s *Scraper) Scrape(ctx context.Context, req *webscrape.ScrapeRequest) *webscrape.Result {
	return s.ScrapeFn(ctx, req)
}
