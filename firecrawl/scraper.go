// Package firecrawl provides a postforge.Scraper backed by the Firecrawl
// scrape API, which returns a page's body as markdown plus its metadata.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/postforge"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout is the default timeout for scrape requests. Scraping can
// involve server-side rendering, so it is longer than a plain page fetch.
const DefaultTimeout = 60 * time.Second

// DefaultRequestsPerSecond is the default client-side rate limit, shared
// across concurrent pipeline runs using the same Scraper.
const DefaultRequestsPerSecond = 1.0

// Ensure Scraper implements postforge.Scraper at compile time.
var _ postforge.Scraper = (*Scraper)(nil)

// Scraper fetches pages through the Firecrawl scrape endpoint.
// Scraper is safe for concurrent use by multiple goroutines.
type Scraper struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	rps     float64
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL overrides the API endpoint. Useful for tests and self-hosted
// Firecrawl instances.
func WithBaseURL(u string) Option {
	return func(s *Scraper) {
		s.baseURL = u
	}
}

// WithTimeout sets the timeout for scrape requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// WithRequestsPerSecond sets the client-side rate limit.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRequestsPerSecond(rps float64) Option {
	return func(s *Scraper) {
		s.rps = rps
	}
}

// NewScraper creates a new Scraper. The API key is required; construction
// fails immediately when it is missing rather than at first use.
func NewScraper(apiKey string, opts ...Option) (*Scraper, error) {
	if apiKey == "" {
		return nil, postforge.Errorf(postforge.EINVALID, "firecrawl API key required")
	}

	s := &Scraper{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		rps:     DefaultRequestsPerSecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{Timeout: s.timeout}
	s.limiter = rate.NewLimiter(rate.Limit(s.rps), 1)

	return s, nil
}

// scrapeRequest is the body of a POST /v1/scrape call.
type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

// scrapeResponse mirrors the Firecrawl v1 scrape response.
type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Markdown string                 `json:"markdown"`
		Metadata postforge.PageMetadata `json:"metadata"`
	} `json:"data"`
}

// Scrape fetches the page at url through the Firecrawl API.
func (s *Scraper) Scrape(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, postforge.Errorf(postforge.ECANCELED, "scrape of %q canceled while rate limited", url)
		}
		return nil, postforge.Errorf(postforge.EFETCH, "rate limiter rejected scrape of %q: %v", url, err)
	}

	payload, err := json.Marshal(scrapeRequest{URL: url, Formats: []string{"markdown"}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/scrape", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "firecrawl request for %q: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "firecrawl response for %q: %v", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, postforge.Errorf(postforge.EFETCH, "firecrawl HTTP %d for %q: %s",
			resp.StatusCode, url, truncate(string(body), 200))
	}

	var decoded scrapeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, postforge.Errorf(postforge.EFETCH, "firecrawl returned malformed JSON for %q: %v", url, err)
	}
	if !decoded.Success {
		msg := decoded.Error
		if msg == "" {
			msg = "unspecified error"
		}
		return nil, postforge.Errorf(postforge.EFETCH, "firecrawl scrape of %q failed: %s", url, msg)
	}

	return &postforge.ScrapeResult{
		Markdown: decoded.Data.Markdown,
		Metadata: decoded.Data.Metadata,
	}, nil
}

// Close releases resources. For the API client this is a no-op since
// http.Client doesn't require explicit cleanup.
func (s *Scraper) Close() error {
	return nil
}

// truncate shortens s for error messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s...", s[:maxLen])
}
