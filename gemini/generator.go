package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/postforge"
	"google.golang.org/genai"
)

// Ensure Generator implements postforge.PostGenerator at compile time.
var _ postforge.PostGenerator = (*Generator)(nil)

// Generator implements postforge.PostGenerator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// GeneratePosts asks the model for one post per requested platform in a
// single call. The returned posts are not validated here; callers check
// completeness and length limits.
func (g *Generator) GeneratePosts(ctx context.Context, content *postforge.WebsiteContent, prefs postforge.ContentPreferences, platforms []postforge.Platform) ([]*postforge.SocialMediaPost, error) {
	if content == nil {
		return nil, postforge.Errorf(postforge.EINVALID, "website content required")
	}
	if err := postforge.ValidatePlatforms(platforms); err != nil {
		return nil, err
	}

	prompt := BuildGenerationPrompt(content, prefs, platforms)
	config := BuildGenerationConfig(platforms)

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, postforge.Errorf(postforge.EGENERATION, "gemini generation failed: %v", err)
	}
	if result == nil {
		return nil, postforge.Errorf(postforge.EGENERATION, "gemini returned nil result")
	}

	var parsed []struct {
		Platform string   `json:"platform"`
		Content  string   `json:"content"`
		Hashtags []string `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(result.Text()), &parsed); err != nil {
		return nil, postforge.Errorf(postforge.EGENERATION, "failed to parse generation response: %v", err)
	}

	posts := make([]*postforge.SocialMediaPost, 0, len(parsed))
	for _, p := range parsed {
		posts = append(posts, &postforge.SocialMediaPost{
			Platform: postforge.Platform(p.Platform),
			Content:  p.Content,
			Hashtags: p.Hashtags,
		})
	}
	return posts, nil
}

// BuildGenerationConfig returns the GenerateContentConfig for generation
// calls. The response is constrained to a JSON array of posts whose
// platform field is limited to the requested platforms.
func BuildGenerationConfig(platforms []postforge.Platform) *genai.GenerateContentConfig {
	temp := float32(0.7)
	enum := make([]string, len(platforms))
	for i, p := range platforms {
		enum[i] = string(p)
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a social media content expert. Create engaging, platform-optimized posts from website content. Tailor each post to the platform's style and character limit, include relevant hashtags that increase visibility, add a compelling call-to-action with the website URL, and reference the author or publication date when available to add credibility.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"platform": {Type: genai.TypeString, Enum: enum},
					"content":  {Type: genai.TypeString, Description: "The main content of the post"},
					"hashtags": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Relevant hashtags for the post, without the # prefix",
					},
				},
				Required: []string{"platform", "content", "hashtags"},
			},
		},
	}
}

// BuildGenerationPrompt builds the user prompt containing the extracted
// content, the preferences and the per-platform constraints.
func BuildGenerationPrompt(content *postforge.WebsiteContent, prefs postforge.ContentPreferences, platforms []postforge.Platform) string {
	var sb strings.Builder
	sb.WriteString("Create one social media post per platform using this content:\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", content.Title)
	fmt.Fprintf(&sb, "Description: %s\n", content.Description)
	fmt.Fprintf(&sb, "Content: %s\n", content.MainContent)
	fmt.Fprintf(&sb, "URL: %s\n\n", content.URL)
	fmt.Fprintf(&sb, "Target Audience: %s\n", prefs.Audience)
	fmt.Fprintf(&sb, "Tone of Voice: %s\n\n", prefs.Tone)
	sb.WriteString("Platforms and character limits:\n")
	for _, p := range platforms {
		limit, _ := postforge.LimitFor(p)
		fmt.Fprintf(&sb, "- %s (%s): max %d characters\n", postforge.DisplayName(p), p, limit)
	}
	fmt.Fprintf(&sb, "\nEach post must stay within its platform's character limit and use at most %d hashtags. ", postforge.MaxHashtags)
	sb.WriteString("Make sure the posts are tailored to the specified audience and maintain the desired tone.")
	return sb.String()
}
