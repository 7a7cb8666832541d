package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postforge"
	"github.com/fwojciec/postforge/firecrawl"
	"github.com/fwojciec/postforge/fs"
	"github.com/fwojciec/postforge/gemini"
	"github.com/fwojciec/postforge/goquery"
	"github.com/fwojciec/postforge/htmltomarkdown"
	pfhttp "github.com/fwojciec/postforge/http"
	pfopenai "github.com/fwojciec/postforge/openai"
	"github.com/fwojciec/postforge/readability"
	"github.com/fwojciec/postforge/rod"
	"github.com/fwojciec/postforge/scrape"
	pfslog "github.com/fwojciec/postforge/slog"
	"github.com/fwojciec/postforge/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Scraper held for cleanup after Run.
	Scraper postforge.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Scraper != nil {
		return m.Scraper.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postforge"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'postforge --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command
	if cmd == "generate" {
		scraper, err := buildScraper(&cli.Generate, stderr)
		if err != nil {
			return err
		}
		m.Scraper = scraper
		defer m.Close()

		extractor, generator, err := buildProvider(ctx, &cli.Generate, stderr)
		if err != nil {
			return err
		}

		if cli.Generate.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			scraper = pfslog.NewLoggingScraper(scraper, logger)
			generator = pfslog.NewLoggingGenerator(generator, logger)
		}

		deps.Scraper = scraper
		deps.Extractor = extractor
		deps.Generator = generator
		deps.Writer = fs.NewWriter(cli.Generate.OutputDir)
	}

	return kongCtx.Run(deps)
}

// buildScraper assembles the scraping path: the Firecrawl API by default,
// or a local fetch-extract-convert chain with --local / --render.
func buildScraper(cmd *GenerateCmd, stderr io.Writer) (postforge.Scraper, error) {
	if !cmd.Local && !cmd.Render {
		apiKey := os.Getenv("FIRECRAWL_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "FIRECRAWL_API_KEY environment variable not set. Get an API key at https://docs.firecrawl.dev")
			fmt.Fprintln(stderr, "Hint: Use --local to scrape without the Firecrawl API")
			return nil, fmt.Errorf("FIRECRAWL_API_KEY not set")
		}
		return firecrawl.NewScraper(apiKey)
	}

	var fetcher postforge.Fetcher
	if cmd.Render {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = pfhttp.NewFetcher()
	}

	var extractor postforge.Extractor
	switch cmd.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = trafilatura.NewExtractor()
	}

	return scrape.NewScraper(fetcher, extractor, htmltomarkdown.NewConverter(), goquery.NewMetadataParser())
}

// buildProvider assembles the completion backends for the chosen provider.
func buildProvider(ctx context.Context, cmd *GenerateCmd, stderr io.Writer) (postforge.ContentExtractor, postforge.PostGenerator, error) {
	switch cmd.Provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return nil, nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		extractor, err := pfopenai.NewExtractor(apiKey, cmd.Model)
		if err != nil {
			return nil, nil, err
		}
		generator, err := pfopenai.NewGenerator(apiKey, cmd.Model)
		if err != nil {
			return nil, nil, err
		}
		return extractor, generator, nil

	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewExtractor(client), gemini.NewGenerator(client), nil
	}
}
