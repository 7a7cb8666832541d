// Package scrape implements postforge.Scraper by composing a Fetcher, an
// Extractor, a Converter and a MetadataParser into a local scraping path
// that needs no external scraping service.
package scrape

import (
	"context"

	"github.com/fwojciec/postforge"
)

// Ensure Scraper implements postforge.Scraper at compile time.
var _ postforge.Scraper = (*Scraper)(nil)

// Scraper fetches a page, strips boilerplate, converts the main content to
// markdown and attaches parsed metadata.
type Scraper struct {
	fetcher   postforge.Fetcher
	extractor postforge.Extractor
	converter postforge.Converter
	metadata  postforge.MetadataParser
}

// NewScraper creates a Scraper from its collaborators. All four are
// required.
func NewScraper(fetcher postforge.Fetcher, extractor postforge.Extractor, converter postforge.Converter, metadata postforge.MetadataParser) (*Scraper, error) {
	if fetcher == nil {
		return nil, postforge.Errorf(postforge.EINVALID, "fetcher is required")
	}
	if extractor == nil {
		return nil, postforge.Errorf(postforge.EINVALID, "extractor is required")
	}
	if converter == nil {
		return nil, postforge.Errorf(postforge.EINVALID, "converter is required")
	}
	if metadata == nil {
		return nil, postforge.Errorf(postforge.EINVALID, "metadata parser is required")
	}
	return &Scraper{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		metadata:  metadata,
	}, nil
}

// Scrape fetches the page at url and returns its markdown body and
// metadata. Any failure along the fetch-extract-convert chain is reported
// as EFETCH so callers see a single failure mode for the scraping stage.
func (s *Scraper) Scrape(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "failed to fetch %s: %v", url, err)
	}

	extracted, err := s.extractor.Extract(html)
	if err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "failed to extract content from %s: %v", url, err)
	}

	markdown, err := s.converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "failed to convert content from %s: %v", url, err)
	}

	meta, err := s.metadata.ParseMetadata(html)
	if err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "failed to parse metadata from %s: %v", url, err)
	}

	// The boilerplate extractor often has a better title than the raw
	// document head; prefer it when the head is empty.
	if meta.Title == "" {
		meta.Title = extracted.Title
	}
	if meta.Description == "" {
		meta.Description = extracted.Description
	}

	return &postforge.ScrapeResult{
		Markdown: markdown,
		Metadata: *meta,
	}, nil
}

// Close releases the underlying fetcher.
func (s *Scraper) Close() error {
	return s.fetcher.Close()
}
