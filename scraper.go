package postforge

import "context"

// PageMetadata is the metadata bag returned alongside a scraped page.
// All fields are optional; fallback helpers implement the documented
// substitution rules.
type PageMetadata struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
	SourceURL     string `json:"sourceURL,omitempty"`
	Language      string `json:"language,omitempty"`
	Author        string `json:"author,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
	StatusCode    int    `json:"statusCode,omitempty"`
}

// TitleOrUntitled returns the page title, preferring the document title,
// then the OpenGraph title, then "Untitled".
func (m *PageMetadata) TitleOrUntitled() string {
	if m.Title != "" {
		return m.Title
	}
	if m.OGTitle != "" {
		return m.OGTitle
	}
	return "Untitled"
}

// DescriptionOrOG returns the meta description, falling back to the
// OpenGraph description, then the empty string.
func (m *PageMetadata) DescriptionOrOG() string {
	if m.Description != "" {
		return m.Description
	}
	return m.OGDescription
}

// Canonical returns the metadata-reported source URL when present,
// otherwise the originally supplied URL.
func (m *PageMetadata) Canonical(orig string) string {
	if m.SourceURL != "" {
		return m.SourceURL
	}
	return orig
}

// ScrapeResult holds a scraped page: the body normalized to markdown plus
// the page metadata.
type ScrapeResult struct {
	Markdown string       `json:"markdown"`
	Metadata PageMetadata `json:"metadata"`
}

// Scraper is the fetch-by-URL capability. Called exactly once per pipeline
// run; it is never retried by the core.
type Scraper interface {
	// Scrape fetches the page at url and returns its markdown body and
	// metadata. Returns EFETCH on network or service failure.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)

	// Close releases any resources held by the scraper.
	Close() error
}

// MetadataParser extracts page metadata from raw HTML.
type MetadataParser interface {
	// ParseMetadata reads title, meta description, OpenGraph fields and the
	// canonical link from an HTML document.
	ParseMetadata(html string) (*PageMetadata, error)
}
