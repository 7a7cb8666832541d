package mock

import (
	"context"

	"github.com/fwojciec/postforge"
)

var _ postforge.PostGenerator = (*PostGenerator)(nil)

// PostGenerator is a mock implementation of postforge.PostGenerator.
type PostGenerator struct {
	GeneratePostsFn func(ctx context.Context, content *postforge.WebsiteContent, prefs postforge.ContentPreferences, ps []postforge.Platform) ([]*postforge.SocialMediaPost, error)
}

func (g *PostGenerator) GeneratePosts(ctx context.Context, content *postforge.WebsiteContent, prefs postforge.ContentPreferences, ps []postforge.Platform) ([]*postforge.SocialMediaPost, error) {
	return g.GeneratePostsFn(ctx, content, prefs, ps)
}
