// Package postforge turns a website URL into a set of platform-tailored
// social media posts. It scrapes the page into normalized markdown plus
// metadata, extracts a structured content record with a language model,
// and generates one post per requested platform, each validated against
// the platform's character limit and hashtag cap.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., firecrawl/, gemini/, openai/).
package postforge
