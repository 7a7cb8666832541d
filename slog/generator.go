package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postforge"
)

// Ensure LoggingGenerator implements postforge.PostGenerator.
var _ postforge.PostGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a PostGenerator with debug logging.
type LoggingGenerator struct {
	next   postforge.PostGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next postforge.PostGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// GeneratePosts delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) GeneratePosts(ctx context.Context, content *postforge.WebsiteContent, prefs postforge.ContentPreferences, platforms []postforge.Platform) (posts []*postforge.SocialMediaPost, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate posts",
			"url", content.URL,
			"platforms", len(platforms),
			"posts", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GeneratePosts(ctx, content, prefs, platforms)
}
