// Package fs implements postforge.PostWriter on the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/postforge"
)

// Ensure Writer implements postforge.PostWriter at compile time.
var _ postforge.PostWriter = (*Writer)(nil)

// Writer saves generated posts as timestamped markdown files in an output
// directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a new Writer. outputDir is created on first write.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WritePosts formats the export as markdown and writes it to a timestamped
// file. Returns the path of the written file.
func (w *Writer) WritePosts(ctx context.Context, export *postforge.Export) (string, error) {
	if export == nil {
		return "", postforge.Errorf(postforge.EINVALID, "export required")
	}
	if err := ctx.Err(); err != nil {
		return "", postforge.Errorf(postforge.ECANCELED, "write canceled")
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", postforge.Errorf(postforge.EINTERNAL, "failed to create output directory: %v", err)
	}

	filename := fmt.Sprintf("social_media_posts_%s.md", export.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(w.outputDir, filename)

	if err := os.WriteFile(path, []byte(FormatExport(export)), 0644); err != nil {
		return "", postforge.Errorf(postforge.EINTERNAL, "failed to write posts: %v", err)
	}
	return path, nil
}

// FormatExport renders an export as a markdown document: a header block
// describing the run, then one section per platform.
func FormatExport(export *postforge.Export) string {
	var b strings.Builder
	b.WriteString("# Generated Social Media Posts\n\n")
	fmt.Fprintf(&b, "**Source URL:** %s\n\n", export.SourceURL)
	fmt.Fprintf(&b, "**Generated at:** %s\n\n", export.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Target Audience:** %s\n", export.Preferences.Audience)
	fmt.Fprintf(&b, "**Content Tone:** %s\n\n", export.Preferences.Tone)
	if export.RunID != "" {
		fmt.Fprintf(&b, "**Run ID:** %s\n\n", export.RunID)
	}
	if export.ContentHash != "" {
		fmt.Fprintf(&b, "**Content Hash:** %s\n\n", export.ContentHash)
	}
	b.WriteString("## Generated Posts\n\n")

	for _, post := range export.Posts {
		fmt.Fprintf(&b, "### %s\n", postforge.DisplayName(post.Platform))
		b.WriteString("```\n")
		b.WriteString(post.Content)
		b.WriteString("\n```\n\n")
		b.WriteString("**Hashtags:**\n")
		tags := make([]string, len(post.Hashtags))
		for i, tag := range post.Hashtags {
			tags[i] = "#" + tag
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n")
	}
	return b.String()
}
