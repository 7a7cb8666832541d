package postforge

import "context"

// Fetcher retrieves raw HTML from URLs for the local scraping path.
// Implementations may use browser automation to handle JavaScript-rendered
// pages.
type Fetcher interface {
	// Fetch retrieves the HTML document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
