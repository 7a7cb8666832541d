package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/postforge"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const generationSystemPrompt = "You are a social media content expert. Create engaging, platform-optimized posts from website content. Tailor each post to the platform's style and character limit, include relevant hashtags that increase visibility, add a compelling call-to-action with the website URL, and reference the author or publication date when available to add credibility."

// Ensure Generator implements postforge.PostGenerator at compile time.
var _ postforge.PostGenerator = (*Generator)(nil)

// Generator implements postforge.PostGenerator using OpenAI chat
// completions.
type Generator struct {
	model string
	opts  []option.RequestOption
}

// NewGenerator creates a new Generator. The API key is required; model
// defaults to DefaultModel when empty.
func NewGenerator(apiKey, model string, opts ...option.RequestOption) (*Generator, error) {
	if apiKey == "" {
		return nil, postforge.Errorf(postforge.EINVALID, "openai api key required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		model: model,
		opts:  append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...),
	}, nil
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

	client := openai.NewClient(g.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(generationSystemPrompt),
			openai.UserMessage(BuildGenerationPrompt(content, prefs, platforms)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "social_media_posts",
					Schema: GenerationSchema(platforms),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, postforge.Errorf(postforge.EGENERATION, "openai generation failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, postforge.Errorf(postforge.EGENERATION, "openai returned no choices")
	}

	var parsed struct {
		Posts []struct {
			Platform string   `json:"platform"`
			Content  string   `json:"content"`
			Hashtags []string `json:"hashtags"`
		} `json:"posts"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, postforge.Errorf(postforge.EGENERATION, "failed to parse generation response: %v", err)
	}

	posts := make([]*postforge.SocialMediaPost, 0, len(parsed.Posts))
	for _, p := range parsed.Posts {
		posts = append(posts, &postforge.SocialMediaPost{
			Platform: postforge.Platform(p.Platform),
			Content:  p.Content,
			Hashtags: p.Hashtags,
		})
	}
	return posts, nil
}

// GenerationSchema returns the JSON schema constraining generation output.
// OpenAI strict schemas require a top-level object, so the posts array is
// wrapped in a "posts" property.
func GenerationSchema(platforms []postforge.Platform) map[string]any {
	enum := make([]string, len(platforms))
	for i, p := range platforms {
		enum[i] = string(p)
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"posts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"platform": map[string]any{"type": "string", "enum": enum},
						"content":  map[string]any{"type": "string", "description": "The main content of the post"},
						"hashtags": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Relevant hashtags for the post, without the # prefix",
						},
					},
					"required":             []string{"platform", "content", "hashtags"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"posts"},
		"additionalProperties": false,
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
