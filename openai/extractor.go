// Package openai implements the content extraction and post generation
// backends using the official openai-go SDK (chat completions with JSON
// schema output).
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

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const extractionSystemPrompt = "You are a content extraction specialist. Analyze webpage content and extract the most important information. Focus on the main message, value proposition, and key details that would be interesting for social media audiences."

// Ensure Extractor implements postforge.ContentExtractor at compile time.
var _ postforge.ContentExtractor = (*Extractor)(nil)

// Extractor implements postforge.ContentExtractor using OpenAI chat
// completions.
type Extractor struct {
	model string
	opts  []option.RequestOption
}

// NewExtractor creates a new Extractor. The API key is required; model
// defaults to DefaultModel when empty.
func NewExtractor(apiKey, model string, opts ...option.RequestOption) (*Extractor, error) {
	if apiKey == "" {
		return nil, postforge.Errorf(postforge.EINVALID, "openai api key required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{
		model: model,
		opts:  append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...),
	}, nil
}

// ExtractContent distills scraped page material into structured website
// content. Metadata fallbacks fill in fields the model leaves empty; the
// returned URL is always the canonical URL, never model output.
func (e *Extractor) ExtractContent(ctx context.Context, url string, scraped *postforge.ScrapeResult) (*postforge.WebsiteContent, error) {
	if url == "" {
		return nil, postforge.Errorf(postforge.EINVALID, "url required")
	}
	if scraped == nil {
		return nil, postforge.Errorf(postforge.EINVALID, "scrape result required")
	}

	client := openai.NewClient(e.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractionSystemPrompt),
			openai.UserMessage(BuildExtractionPrompt(url, scraped)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "website_content",
					Schema: ExtractionSchema(),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, postforge.Errorf(postforge.EEXTRACTION, "openai extraction failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, postforge.Errorf(postforge.EEXTRACTION, "openai returned no choices")
	}

	var parsed struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		MainContent string `json:"mainContent"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, postforge.Errorf(postforge.EEXTRACTION, "failed to parse extraction response: %v", err)
	}

	content := &postforge.WebsiteContent{
		Title:       parsed.Title,
		Description: parsed.Description,
		MainContent: parsed.MainContent,
		URL:         scraped.Metadata.Canonical(url),
	}
	if content.Title == "" {
		content.Title = scraped.Metadata.TitleOrUntitled()
	}
	if content.Description == "" {
		content.Description = scraped.Metadata.DescriptionOrOG()
	}
	if content.MainContent == "" {
		content.MainContent = scraped.Markdown
	}

	return content, nil
}

// ExtractionSchema returns the JSON schema constraining extraction output.
func ExtractionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "description": "The title of the webpage"},
			"description": map[string]any{"type": "string", "description": "Meta description or summary of the webpage"},
			"mainContent": map[string]any{"type": "string", "description": "Main content extracted from the webpage"},
		},
		"required":             []string{"title", "description", "mainContent"},
		"additionalProperties": false,
	}
}

// BuildExtractionPrompt builds the user prompt containing the scraped page.
func BuildExtractionPrompt(url string, scraped *postforge.ScrapeResult) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	fmt.Fprintf(&sb, "<url>%s</url>\n", url)
	if title := scraped.Metadata.Title; title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	}
	if desc := scraped.Metadata.DescriptionOrOG(); desc != "" {
		fmt.Fprintf(&sb, "<description>%s</description>\n", desc)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", scraped.Markdown)
	sb.WriteString("</page>\n\n")
	sb.WriteString("Extract the title, a short description, and the main content from this page.")
	return sb.String()
}
