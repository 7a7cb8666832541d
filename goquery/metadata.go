// Package goquery provides a CSS-selector based implementation of
// postforge.MetadataParser for reading page metadata out of raw HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postforge"
)

// Ensure MetadataParser implements postforge.MetadataParser at compile time.
var _ postforge.MetadataParser = (*MetadataParser)(nil)

// MetadataParser extracts page metadata using goquery selectors.
type MetadataParser struct{}

// NewMetadataParser creates a new MetadataParser.
func NewMetadataParser() *MetadataParser {
	return &MetadataParser{}
}

// ParseMetadata reads the document title, meta description, OpenGraph
// fields, canonical link, language and author from an HTML document.
// Missing fields are left empty; fallback rules live on PageMetadata.
func (p *MetadataParser) ParseMetadata(html string) (*postforge.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, postforge.Errorf(postforge.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &postforge.PageMetadata{
		Title:         strings.TrimSpace(doc.Find("title").First().Text()),
		Description:   metaContent(doc, `meta[name="description"]`),
		OGTitle:       metaContent(doc, `meta[property="og:title"]`),
		OGDescription: metaContent(doc, `meta[property="og:description"]`),
		Author:        metaContent(doc, `meta[name="author"]`),
		PublishedTime: metaContent(doc, `meta[property="article:published_time"]`),
	}

	if canonical, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		meta.SourceURL = strings.TrimSpace(canonical)
	} else if ogURL := metaContent(doc, `meta[property="og:url"]`); ogURL != "" {
		meta.SourceURL = ogURL
	}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		meta.Language = strings.TrimSpace(lang)
	}

	return meta, nil
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector, or the empty string.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
