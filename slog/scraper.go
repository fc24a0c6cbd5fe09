package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webscrape"
)

// Ensure LoggingScraper implements webscrape.Scraper.
var _ webscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and records every outcome. Failures are
// logged at warn level with the URL and message. Logging never alters the
// result.
type LoggingScraper struct {
	next   webscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next webscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the result.
func (s *LoggingScraper) Scrape(ctx context.Context, req *webscrape.ScrapeRequest) *webscrape.Result {
	begin := time.Now()
	result := s.next.Scrape(ctx, req)

	if !result.Success() {
		s.logger.WarnContext(ctx, "scrape failed",
			"url", req.URL,
			"kind", result.Kind(),
			"err", result.Err.Message,
			"duration", time.Since(begin),
		)
		return result
	}

	s.logger.InfoContext(ctx, "scrape",
		"url", req.URL,
		"chars", len([]rune(result.Content)),
		"hash", strconv.FormatUint(xxhash.Sum64String(result.Content), 16),
		"duration", time.Since(begin),
	)
	return result
}
