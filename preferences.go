package postforge

// Default content settings used when the caller leaves preferences empty.
const (
	DefaultAudience = "general professional audience"
	DefaultTone     = "informative and engaging"
)

// ContentPreferences holds user preferences for content generation.
// Immutable once constructed; create one per pipeline run.
type ContentPreferences struct {
	// Audience is the target audience for the content.
	Audience string `json:"audience"`

	// Tone is the desired tone of voice for the content.
	Tone string `json:"tone"`
}

// ResolvePreferences substitutes documented defaults for empty audience or
// tone values. Total function: it never fails.
func ResolvePreferences(audience, tone string) ContentPreferences {
	if audience == "" {
		audience = DefaultAudience
	}
	if tone == "" {
		tone = DefaultTone
	}
	return ContentPreferences{Audience: audience, Tone: tone}
}
