package goquery_test

import (
	"testing"

	"github.com/fwojciec/postforge"
	pfgoquery "github.com/fwojciec/postforge/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetadataParser implements postforge.MetadataParser at compile time.
var _ postforge.MetadataParser = (*pfgoquery.MetadataParser)(nil)

func TestMetadataParser_ParseMetadata(t *testing.T) {
	t.Parallel()

	t.Run("parses a fully tagged document", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head>
<title>Launching Widgets 2.0</title>
<meta name="description" content="Widgets 2.0 ships today.">
<meta name="author" content="Jane Roe">
<meta property="og:title" content="Widgets 2.0">
<meta property="og:description" content="The biggest Widgets update yet.">
<meta property="article:published_time" content="2026-08-20T09:00:00Z">
<link rel="canonical" href="https://example.com/blog/widgets-2">
</head>
<body><p>Body</p></body>
</html>`

		parser := pfgoquery.NewMetadataParser()
		meta, err := parser.ParseMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Launching Widgets 2.0", meta.Title)
		assert.Equal(t, "Widgets 2.0 ships today.", meta.Description)
		assert.Equal(t, "Jane Roe", meta.Author)
		assert.Equal(t, "Widgets 2.0", meta.OGTitle)
		assert.Equal(t, "The biggest Widgets update yet.", meta.OGDescription)
		assert.Equal(t, "2026-08-20T09:00:00Z", meta.PublishedTime)
		assert.Equal(t, "https://example.com/blog/widgets-2", meta.SourceURL)
		assert.Equal(t, "en", meta.Language)
	})

	t.Run("falls back to og:url when no canonical link", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:url" content="https://example.com/og-url">
</head><body></body></html>`

		parser := pfgoquery.NewMetadataParser()
		meta, err := parser.ParseMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/og-url", meta.SourceURL)
	})

	t.Run("prefers canonical link over og:url", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<link rel="canonical" href="https://example.com/canonical">
<meta property="og:url" content="https://example.com/og-url">
</head><body></body></html>`

		parser := pfgoquery.NewMetadataParser()
		meta, err := parser.ParseMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/canonical", meta.SourceURL)
	})

	t.Run("leaves missing fields empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><p>Bare page</p></body></html>`

		parser := pfgoquery.NewMetadataParser()
		meta, err := parser.ParseMetadata(html)

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Description)
		assert.Empty(t, meta.OGDescription)
		assert.Empty(t, meta.SourceURL)
		assert.Equal(t, "Untitled", meta.TitleOrUntitled())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>
  Padded Title
</title>
<meta name="description" content="  padded description  ">
</head><body></body></html>`

		parser := pfgoquery.NewMetadataParser()
		meta, err := parser.ParseMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Padded Title", meta.Title)
		assert.Equal(t, "padded description", meta.Description)
	})
}
