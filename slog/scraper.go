// Package slog provides logging decorators for the scraping and generation
// services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postforge"
)

// Ensure LoggingScraper implements postforge.Scraper.
var _ postforge.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   postforge.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next postforge.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result *postforge.ScrapeResult, err error) {
	defer func(begin time.Time) {
		var size int
		if result != nil {
			size = len(result.Markdown)
		}
		s.logger.Info("scrape",
			"url", url,
			"markdown_bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// Close delegates to the wrapped scraper.
func (s *LoggingScraper) Close() error {
	return s.next.Close()
}
