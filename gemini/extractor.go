// Package gemini implements the content extraction and post generation
// backends using Google Gemini structured output.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/postforge"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Extractor implements postforge.ContentExtractor at compile time.
var _ postforge.ContentExtractor = (*Extractor)(nil)

// Extractor implements postforge.ContentExtractor using Google Gemini.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client) *Extractor {
	return &Extractor{client: client}
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

	prompt := BuildExtractionPrompt(url, scraped)
	config := BuildExtractionConfig()

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, postforge.Errorf(postforge.EEXTRACTION, "gemini extraction failed: %v", err)
	}
	if result == nil {
		return nil, postforge.Errorf(postforge.EEXTRACTION, "gemini returned nil result")
	}

	var parsed struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		MainContent string `json:"mainContent"`
	}
	if err := json.Unmarshal([]byte(result.Text()), &parsed); err != nil {
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

// BuildExtractionConfig returns the GenerateContentConfig for extraction
// calls. The response is constrained to a JSON object matching the
// website content shape.
func BuildExtractionConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a content extraction specialist. Analyze webpage content and extract the most important information. Focus on the main message, value proposition, and key details that would be interesting for social media audiences.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString, Description: "The title of the webpage"},
				"description": {Type: genai.TypeString, Description: "Meta description or summary of the webpage"},
				"mainContent": {Type: genai.TypeString, Description: "Main content extracted from the webpage"},
			},
			Required: []string{"title", "mainContent"},
		},
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
