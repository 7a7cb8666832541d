package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/postforge"
	"github.com/fwojciec/postforge/pipeline"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	platforms, err := parsePlatforms(c.Platforms)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postforge.ErrorMessage(err))
		return err
	}

	prefs := postforge.ResolvePreferences(c.Audience, c.Tone)

	p := &pipeline.Pipeline{
		Scraper:   deps.Scraper,
		Extractor: deps.Extractor,
		Generator: deps.Generator,
		Progress: func(e pipeline.Event) {
			switch e.State {
			case pipeline.StateExtracting:
				fmt.Fprintf(deps.Stderr, "extracting %s\n", e.URL)
			case pipeline.StateGenerating:
				fmt.Fprintf(deps.Stderr, "generating posts for %s\n", e.URL)
			case pipeline.StateDone:
				fmt.Fprintf(deps.Stderr, "done %s\n", e.URL)
			case pipeline.StateFailed:
				fmt.Fprintf(deps.Stderr, "failed %s: %s\n", e.URL, postforge.ErrorMessage(e.Err))
			}
		},
	}

	outcomes := p.RunAll(deps.Ctx, c.URLs, prefs, platforms, c.Concurrency)

	var firstErr error
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", outcome.URL, postforge.ErrorMessage(outcome.Err))
			if firstErr == nil {
				firstErr = outcome.Err
			}
			continue
		}
		if err := c.report(deps, outcome.Result); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// report exports a run's posts and prints them to stdout.
func (c *GenerateCmd) report(deps *Dependencies, result *pipeline.Result) error {
	path, err := deps.Writer.WritePosts(deps.Ctx, &postforge.Export{
		RunID:       result.RunID,
		SourceURL:   result.URL,
		Preferences: result.Preferences,
		Posts:       result.Posts,
		ContentHash: result.ContentHash,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postforge.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated posts for %s\n", result.URL)
	fmt.Fprintf(deps.Stdout, "Audience: %s\n", result.Preferences.Audience)
	fmt.Fprintf(deps.Stdout, "Tone: %s\n", result.Preferences.Tone)
	fmt.Fprintf(deps.Stdout, "Saved to: %s\n\n", path)

	for _, post := range result.Posts {
		limit, _ := postforge.LimitFor(post.Platform)
		fmt.Fprintf(deps.Stdout, "=== %s (%d/%d chars) ===\n", postforge.DisplayName(post.Platform), utf8.RuneCountInString(post.Content), limit)
		fmt.Fprintln(deps.Stdout, post.Content)
		if len(post.Hashtags) > 0 {
			fmt.Fprint(deps.Stdout, "Hashtags:")
			for _, tag := range post.Hashtags {
				fmt.Fprintf(deps.Stdout, " #%s", tag)
			}
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// parsePlatforms converts the --platform flags to registry platforms.
// An empty flag set means all platforms.
func parsePlatforms(names []string) ([]postforge.Platform, error) {
	platforms := make([]postforge.Platform, 0, len(names))
	for _, name := range names {
		p, err := postforge.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
