package mock

import (
	"context"

	"github.com/fwojciec/postforge"
)

var _ postforge.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of postforge.PostWriter.
type PostWriter struct {
	WritePostsFn func(ctx context.Context, export *postforge.Export) (string, error)
}

func (w *PostWriter) WritePosts(ctx context.Context, export *postforge.Export) (string, error) {
	return w.WritePostsFn(ctx, export)
}
