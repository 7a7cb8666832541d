package postforge

import (
	"context"
	"net/url"
)

// WebsiteContent is the structured representation of extracted webpage
// content. Created once per run by a ContentExtractor, read-only afterward.
type WebsiteContent struct {
	// Title is the title of the webpage. Falls back to "Untitled" when the
	// page metadata carries none.
	Title string `json:"title"`

	// Description is the meta description or summary of the webpage.
	// May be empty.
	Description string `json:"description"`

	// MainContent is the main body extracted from the webpage, as markdown.
	MainContent string `json:"mainContent"`

	// URL is the canonical URL of the webpage.
	URL string `json:"url"`
}

// Validate returns an error if the content record contains invalid fields.
func (c *WebsiteContent) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "content title required")
	}
	if c.MainContent == "" {
		return Errorf(EINVALID, "content main body required")
	}
	if err := ValidateURL(c.URL); err != nil {
		return err
	}
	return nil
}

// ValidateURL checks that a raw URL parses as an absolute URL with both a
// scheme and a host. Returns EINVALIDURL otherwise.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALIDURL, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALIDURL, "URL %q must be absolute with scheme and host", rawURL)
	}
	return nil
}

// ContentExtractor produces a validated content record from a scraped page
// via a single structured completion call.
type ContentExtractor interface {
	// ExtractContent analyzes the scraped page and returns a validated
	// WebsiteContent. The URL in the result is the metadata-reported source
	// URL when present, otherwise the originally supplied URL.
	// Returns EEXTRACTION if the completion output fails the schema.
	ExtractContent(ctx context.Context, url string, scraped *ScrapeResult) (*WebsiteContent, error)
}
