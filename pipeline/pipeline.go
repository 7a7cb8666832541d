// Package pipeline orchestrates the two-stage content pipeline: a page is
// scraped and extracted into a content record, then the record is turned
// into one validated post per requested platform. A run is single-shot and
// all-or-nothing; a failed run is restarted, never resumed.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/postforge"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// State identifies where a run is in its lifecycle.
type State string

// Run states. Failed is terminal and reachable from Extracting or
// Generating; Done is only reachable after a fully validated post set.
const (
	StateIdle       State = "idle"
	StateExtracting State = "extracting"
	StateGenerating State = "generating"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Event reports a state transition during a run.
type Event struct {
	State State
	URL   string
	Err   error
}

// ProgressFunc is a callback for observing run state transitions.
type ProgressFunc func(Event)

// Pipeline wires the pipeline's collaborators. The scraper and both
// completion-backed stages are potentially blocking network operations;
// the pipeline treats each as a single suspension point with no internal
// retry, since retrying a generative call silently could change output.
type Pipeline struct {
	Scraper   postforge.Scraper
	Extractor postforge.ContentExtractor
	Generator postforge.PostGenerator
	Progress  ProgressFunc
}

// Result holds the outcome of a successful run. All records are owned by
// the run; nothing outlives it except what the caller exports.
type Result struct {
	RunID       string
	URL         string
	Preferences postforge.ContentPreferences
	Content     *postforge.WebsiteContent
	Posts       []*postforge.SocialMediaPost
	ContentHash string
	Duration    time.Duration
}

// Run executes one end-to-end pipeline run for a single URL. An empty
// platform set defaults to all registry platforms; empty preference fields
// default per ResolvePreferences. The URL is validated before any scrape or
// completion call is made.
func (p *Pipeline) Run(ctx context.Context, url string, prefs postforge.ContentPreferences, platforms []postforge.Platform) (*Result, error) {
	began := time.Now()

	if err := postforge.ValidateURL(url); err != nil {
		return nil, p.fail(url, err)
	}

	if len(platforms) == 0 {
		platforms = postforge.Platforms()
	}
	if err := postforge.ValidatePlatforms(platforms); err != nil {
		return nil, p.fail(url, err)
	}

	// Empty preference fields fall back to the documented defaults here,
	// not just in the CLI, so embedders never generate with a blank
	// audience or tone.
	prefs = postforge.ResolvePreferences(prefs.Audience, prefs.Tone)

	p.notify(Event{State: StateExtracting, URL: url})

	scraped, err := p.Scraper.Scrape(ctx, url)
	if err != nil {
		return nil, p.fail(url, canceledOr(ctx, err, "scrape"))
	}

	content, err := p.Extractor.ExtractContent(ctx, url, scraped)
	if err != nil {
		return nil, p.fail(url, canceledOr(ctx, err, "extraction"))
	}
	if err := content.Validate(); err != nil {
		return nil, p.fail(url, postforge.Errorf(postforge.EEXTRACTION,
			"extracted content invalid: %s", postforge.ErrorMessage(err)))
	}

	p.notify(Event{State: StateGenerating, URL: url})

	posts, err := p.Generator.GeneratePosts(ctx, content, prefs, platforms)
	if err != nil {
		return nil, p.fail(url, canceledOr(ctx, err, "generation"))
	}

	ordered, err := postforge.ValidatePostSet(posts, platforms)
	if err != nil {
		return nil, p.fail(url, err)
	}
	for _, post := range ordered {
		if err := post.Validate(); err != nil {
			return nil, p.fail(url, err)
		}
	}

	p.notify(Event{State: StateDone, URL: url})

	return &Result{
		RunID:       uuid.NewString(),
		URL:         url,
		Preferences: prefs,
		Content:     content,
		Posts:       ordered,
		ContentHash: hashContent(content.MainContent),
		Duration:    time.Since(began),
	}, nil
}

// Outcome pairs a URL with its run result or error.
type Outcome struct {
	URL    string
	Result *Result
	Err    error
}

// RunAll executes independent runs for multiple URLs concurrently, at most
// concurrency at a time. Runs share no mutable state; the platform registry
// is read-only. Outcomes are returned in input order, one per URL.
func (p *Pipeline) RunAll(ctx context.Context, urls []string, prefs postforge.ContentPreferences, platforms []postforge.Platform, concurrency int) []*Outcome {
	if concurrency <= 0 {
		concurrency = 4
	}

	outcomes := make([]*Outcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			result, err := p.Run(gctx, url, prefs, platforms)
			outcomes[i] = &Outcome{URL: url, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// notify reports a state transition to the progress callback, if any.
func (p *Pipeline) notify(event Event) {
	if p.Progress != nil {
		p.Progress(event)
	}
}

// fail transitions the run to Failed and returns the originating error.
func (p *Pipeline) fail(url string, err error) error {
	p.notify(Event{State: StateFailed, URL: url, Err: err})
	return err
}

// canceledOr maps a failure at a suspension point to ECANCELED when the
// context was canceled, so a canceled run never surfaces as anything but
// Failed with a cancellation-kind error.
func canceledOr(ctx context.Context, err error, stage string) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return postforge.Errorf(postforge.ECANCELED, "run canceled during %s", stage)
	}
	return err
}

// hashContent computes a hash of the content using xxhash.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
