package mock

import (
	"context"

	"github.com/fwojciec/postforge"
)

var _ postforge.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of postforge.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*postforge.ScrapeResult, error)
	CloseFn  func() error
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}

func (s *Scraper) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
