package main

import (
	"context"
	"io"

	"github.com/fwojciec/postforge"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Scraper   postforge.Scraper
	Extractor postforge.ContentExtractor
	Generator postforge.PostGenerator
	Writer    postforge.PostWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate  GenerateCmd  `cmd:"" help:"Generate social media posts from website URLs"`
	Platforms PlatformsCmd `cmd:"" help:"List supported platforms and their limits"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URLs        []string `arg:"" help:"Website URLs to generate posts from"`
	Audience    string   `short:"a" help:"Target audience (default: general professional audience)"`
	Tone        string   `short:"t" help:"Content tone (default: informative and engaging)"`
	Platforms   []string `short:"p" name:"platforms" help:"Platforms to generate for, comma separated (default: all)"`
	Provider    string   `default:"gemini" enum:"gemini,openai" help:"Completion provider"`
	Model       string   `help:"Override the completion model (openai provider only)"`
	Local       bool     `short:"l" help:"Scrape locally instead of using the Firecrawl API"`
	Render      bool     `short:"r" help:"Render pages in a headless browser (implies --local)"`
	Extractor   string   `default:"trafilatura" enum:"trafilatura,readability" help:"Boilerplate extractor for local scraping"`
	OutputDir   string   `short:"o" default:"outputs" help:"Directory for exported markdown files"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent run limit for multiple URLs"`
	Verbose     bool     `short:"v" help:"Log scrape and generation calls"`
}

// PlatformsCmd is the "platforms" subcommand.
type PlatformsCmd struct{}
