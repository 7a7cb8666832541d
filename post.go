package postforge

import (
	"context"
	"unicode/utf8"
)

// SocialMediaPost is one generated post optimized for a specific platform.
// The terminal artifact of a pipeline run; immutable once validated.
type SocialMediaPost struct {
	// Platform tags the post with its target platform.
	Platform Platform `json:"platform"`

	// Content is the main text of the post. Must respect the platform's
	// character limit.
	Content string `json:"content"`

	// Hashtags are relevant hashtags for the post, without the leading '#'.
	// At most MaxHashtags entries.
	Hashtags []string `json:"hashtags"`
}

// Validate returns an error if the post violates a hard platform
// constraint. Character limits count runes, not bytes, matching how the
// platforms themselves count. There is no truncation: an oversized post is
// rejected so the caller can retry or adjust preferences.
func (p *SocialMediaPost) Validate() error {
	limit, err := LimitFor(p.Platform)
	if err != nil {
		return err
	}
	if p.Content == "" {
		return Errorf(EPOSTINVALID, "%s post has empty content", p.Platform)
	}
	if n := utf8.RuneCountInString(p.Content); n > limit {
		return Errorf(EPOSTINVALID, "%s post is %d characters, limit is %d", p.Platform, n, limit)
	}
	if len(p.Hashtags) > MaxHashtags {
		return Errorf(EPOSTINVALID, "%s post has %d hashtags, limit is %d", p.Platform, len(p.Hashtags), MaxHashtags)
	}
	return nil
}

// ValidatePostSet checks that posts contains exactly one post per requested
// platform, with no duplicates or extras, and returns the posts sorted into
// request order. The completion engine's response order is not trusted.
// Returns EGENERATION when the set does not match the request.
func ValidatePostSet(posts []*SocialMediaPost, requested []Platform) ([]*SocialMediaPost, error) {
	byPlatform := make(map[Platform]*SocialMediaPost, len(posts))
	for _, post := range posts {
		if _, err := LimitFor(post.Platform); err != nil {
			return nil, Errorf(EGENERATION, "generated post for unknown platform %q", post.Platform)
		}
		if _, ok := byPlatform[post.Platform]; ok {
			return nil, Errorf(EGENERATION, "duplicate post for platform %q", post.Platform)
		}
		byPlatform[post.Platform] = post
	}

	ordered := make([]*SocialMediaPost, 0, len(requested))
	for _, p := range requested {
		post, ok := byPlatform[p]
		if !ok {
			return nil, Errorf(EGENERATION, "missing post for platform %q", p)
		}
		ordered = append(ordered, post)
		delete(byPlatform, p)
	}
	for p := range byPlatform {
		return nil, Errorf(EGENERATION, "unrequested post for platform %q", p)
	}
	return ordered, nil
}

// PostGenerator produces one post per requested platform from a content
// record via a single structured completion call per run.
type PostGenerator interface {
	// GeneratePosts returns one post per platform in ps, adapted to the
	// preferences and respecting each platform's constraints. The returned
	// order is not guaranteed; callers sort with ValidatePostSet.
	// Returns EGENERATION if the completion output fails the schema.
	GeneratePosts(ctx context.Context, content *WebsiteContent, prefs ContentPreferences, ps []Platform) ([]*SocialMediaPost, error)
}
