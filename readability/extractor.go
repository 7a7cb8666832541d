// Package readability provides an alternate postforge.Extractor built on
// go-readability, for pages where trafilatura's heuristics fall short.
package readability

import (
	"strings"

	"github.com/fwojciec/postforge"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements postforge.Extractor at compile time.
var _ postforge.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The description
// is readability's excerpt, which prefers the page's meta description.
func (e *Extractor) Extract(rawHTML string) (*postforge.ExtractResult, error) {
	if rawHTML == "" {
		return nil, postforge.Errorf(postforge.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &postforge.ExtractResult{
		Title:       article.Title,
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}, nil
}
