package main_test

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/postforge"
	main "github.com/fwojciec/postforge/cmd/postforge"
	"github.com/fwojciec/postforge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func happyDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Scraper: &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
				return &postforge.ScrapeResult{
					Markdown: "# Widgets 2.0",
					Metadata: postforge.PageMetadata{Title: "Widgets 2.0"},
				}, nil
			},
		},
		Extractor: &mock.ContentExtractor{
			ExtractContentFn: func(ctx context.Context, url string, scraped *postforge.ScrapeResult) (*postforge.WebsiteContent, error) {
				return &postforge.WebsiteContent{
					Title:       "Widgets 2.0",
					Description: "The biggest update yet.",
					MainContent: "Today we are shipping Widgets 2.0.",
					URL:         url,
				}, nil
			},
		},
		Generator: &mock.PostGenerator{
			GeneratePostsFn: func(ctx context.Context, content *postforge.WebsiteContent, prefs postforge.ContentPreferences, ps []postforge.Platform) ([]*postforge.SocialMediaPost, error) {
				posts := make([]*postforge.SocialMediaPost, len(ps))
				for i, p := range ps {
					posts[i] = &postforge.SocialMediaPost{
						Platform: p,
						Content:  "Widgets 2.0 is here!",
						Hashtags: []string{"widgets"},
					}
				}
				return posts, nil
			},
		},
		Writer: &mock.PostWriter{
			WritePostsFn: func(ctx context.Context, export *postforge.Export) (string, error) {
				return "outputs/social_media_posts_test.md", nil
			},
		},
	}
}

func TestGenerateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("generates and exports posts", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)

		var exported *postforge.Export
		deps.Writer = &mock.PostWriter{
			WritePostsFn: func(ctx context.Context, export *postforge.Export) (string, error) {
				exported = export
				return "outputs/posts.md", nil
			},
		}

		cmd := &main.GenerateCmd{
			URLs:      []string{"https://example.com/blog"},
			Platforms: []string{"twitter", "linkedin"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, exported)
		assert.Equal(t, "https://example.com/blog", exported.SourceURL)
		assert.Len(t, exported.Posts, 2)
		assert.NotEmpty(t, exported.RunID)

		output := stdout.String()
		assert.Contains(t, output, "Generated posts for https://example.com/blog")
		assert.Contains(t, output, "Saved to: outputs/posts.md")
		assert.Contains(t, output, "=== Twitter (X) (20/280 chars) ===")
		assert.Contains(t, output, "=== LinkedIn (20/3000 chars) ===")
		assert.Contains(t, output, "Widgets 2.0 is here!")
		assert.Contains(t, output, "#widgets")
	})

	t.Run("uses default preferences", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)

		cmd := &main.GenerateCmd{URLs: []string{"https://example.com"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Audience: general professional audience")
		assert.Contains(t, output, "Tone: informative and engaging")
	})

	t.Run("defaults to all platforms", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)

		cmd := &main.GenerateCmd{URLs: []string{"https://example.com"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "=== Twitter (X)")
		assert.Contains(t, output, "=== LinkedIn")
		assert.Contains(t, output, "=== Facebook")
		assert.Contains(t, output, "=== Instagram")
	})

	t.Run("rejects unknown platform before any scrape", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)

		var scrapes atomic.Int32
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
				scrapes.Add(1)
				return nil, nil
			},
		}

		cmd := &main.GenerateCmd{
			URLs:      []string{"https://example.com"},
			Platforms: []string{"myspace"},
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, postforge.EUNKNOWNPLATFORM, postforge.ErrorCode(err))
		assert.Equal(t, int32(0), scrapes.Load())
		assert.Contains(t, stderr.String(), "myspace")
	})

	t.Run("reports run failure on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
				return nil, postforge.Errorf(postforge.EFETCH, "site unreachable")
			},
		}

		cmd := &main.GenerateCmd{URLs: []string{"https://example.com"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, postforge.EFETCH, postforge.ErrorCode(err))
		assert.Contains(t, stderr.String(), "site unreachable")
	})

	t.Run("continues past failed URLs and still exports successes", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*postforge.ScrapeResult, error) {
				if url == "https://bad.example.com" {
					return nil, postforge.Errorf(postforge.EFETCH, "site unreachable")
				}
				return &postforge.ScrapeResult{Markdown: "# OK"}, nil
			},
		}

		var writes atomic.Int32
		deps.Writer = &mock.PostWriter{
			WritePostsFn: func(ctx context.Context, export *postforge.Export) (string, error) {
				writes.Add(1)
				return "outputs/posts.md", nil
			},
		}

		cmd := &main.GenerateCmd{
			URLs:        []string{"https://bad.example.com", "https://good.example.com"},
			Platforms:   []string{"twitter"},
			Concurrency: 1,
		}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, int32(1), writes.Load())
		assert.Contains(t, stdout.String(), "Generated posts for https://good.example.com")
		assert.Contains(t, stderr.String(), "https://bad.example.com")
	})

	t.Run("prints progress on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := happyDeps(stdout, stderr)

		cmd := &main.GenerateCmd{
			URLs:      []string{"https://example.com"},
			Platforms: []string{"twitter"},
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		progress := stderr.String()
		assert.Contains(t, progress, "extracting https://example.com")
		assert.Contains(t, progress, "generating posts for https://example.com")
		assert.Contains(t, progress, "done https://example.com")
	})
}
