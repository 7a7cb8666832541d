package postforge

import (
	"context"
	"time"
)

// Export bundles everything a run hands over for serialization: the posts,
// their source, and the preferences they were generated with.
type Export struct {
	RunID       string
	SourceURL   string
	Preferences ContentPreferences
	Posts       []*SocialMediaPost
	ContentHash string
	GeneratedAt time.Time
}

// PostWriter serializes a run's posts for the caller. The core guarantees
// the post sequence it hands over is fully validated; formatting is the
// writer's concern.
type PostWriter interface {
	// WritePosts serializes the export and returns the location it was
	// written to (e.g., a file path).
	WritePosts(ctx context.Context, export *Export) (string, error)
}
