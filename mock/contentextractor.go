package mock

import (
	"context"

	"github.com/fwojciec/postforge"
)

var _ postforge.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of postforge.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(ctx context.Context, url string, scraped *postforge.ScrapeResult) (*postforge.WebsiteContent, error)
}

func (e *ContentExtractor) ExtractContent(ctx context.Context, url string, scraped *postforge.ScrapeResult) (*postforge.WebsiteContent, error) {
	return e.ExtractContentFn(ctx, url, scraped)
}
