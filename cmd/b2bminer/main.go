package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/Raavan18/b2b-data-miner/discover"
	"github.com/Raavan18/b2b-data-miner/gin"
	"github.com/Raavan18/b2b-data-miner/goquery"
	minerhttp "github.com/Raavan18/b2b-data-miner/http"
	"github.com/Raavan18/b2b-data-miner/pipeline"
	"github.com/Raavan18/b2b-data-miner/rod"
	minerslog "github.com/Raavan18/b2b-data-miner/slog"
	"github.com/Raavan18/b2b-data-miner/sqlite"
	"github.com/Raavan18/b2b-data-miner/zenrows"
)

func main() {
	ctx := context.Background()

	// Load .env file if it exists
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// searchRatePerSecond paces requests against each host, search engines
// and company sites alike. One request per second per host keeps both
// engines from blocking the crawl.
const searchRatePerSecond = 1.0

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ReportService miner.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
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
		kong.Name("b2bminer"),
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
		return fmt.Errorf("no command specified. Run 'b2bminer --help' to see available commands")
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

	// The serve config may point at a different database, so load it
	// before the database is opened.
	var cfg *ServeConfig
	if cmd == "serve" {
		if cfg, err = LoadServeConfig(cli.Serve.Config); err != nil {
			return err
		}
		if cfg.DB != "" {
			m.DBPath = cfg.DB
		}
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set B2BMINER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ReportService = sqlite.NewReportService(m.DB)
	deps.DB = m.DB
	deps.Reports = m.ReportService

	// Wire command-specific dependencies based on command
	if cmd == "mine" {
		fetcher, err := newFetcher(cli.Mine.Fetcher, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		limiter := discover.NewDomainLimiter(searchRatePerSecond)

		var discovery miner.DiscoveryService = &discover.Discoverer{
			Fetcher:     fetcher,
			Parsers:     searchParsers(),
			RateLimiter: limiter,
		}

		pageFetcher := fetcher
		if cli.Mine.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			pageFetcher = minerslog.NewLoggingFetcher(fetcher, logger)
			discovery = minerslog.NewLoggingDiscoveryService(discovery, logger)
		}

		reports := deps.Reports
		if cli.Mine.NoSave {
			reports = nil
		}

		deps.Miner = &pipeline.Pipeline{
			Discovery:       discovery,
			Fetcher:         pageFetcher,
			Contacts:        goquery.NewExtractor(),
			Names:           goquery.NewExtractor(),
			People:          goquery.NewPeopleExtractor(),
			RateLimiter:     limiter,
			Reports:         reports,
			Concurrency:     cli.Mine.Concurrency,
			MaxFetch:        cli.Mine.MaxFetch,
			SeedIntentPaths: cli.Mine.SeedPaths,
		}
	}

	if cmd == "serve" {
		fetcher, err := newFetcher(cfg.Fetcher, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		limiter := discover.NewDomainLimiter(searchRatePerSecond)
		logger := slog.New(slog.NewTextHandler(stderr, nil))

		deps.Miner = &pipeline.Pipeline{
			Discovery: &discover.Discoverer{
				Fetcher:     fetcher,
				Parsers:     searchParsers(),
				RateLimiter: limiter,
			},
			Fetcher:         minerslog.NewLoggingFetcher(fetcher, logger),
			Contacts:        goquery.NewExtractor(),
			Names:           goquery.NewExtractor(),
			People:          goquery.NewPeopleExtractor(),
			RateLimiter:     limiter,
			Reports:         deps.Reports,
			Concurrency:     cfg.Concurrency,
			MaxFetch:        cfg.MaxFetch,
			SeedIntentPaths: cfg.SeedPaths,
		}

		addr := cli.Serve.Addr
		if cfg.Addr != "" {
			addr = cfg.Addr
		}

		deps.Server = gin.NewServer()
		deps.Server.Addr = addr
		deps.Server.MiningService = deps.Miner
		deps.Server.ReportService = deps.Reports
		deps.Server.Logger = logger
	}

	return kongCtx.Run(deps)
}

// searchParsers returns the result parsers for every supported engine.
func searchParsers() []miner.SearchResultParser {
	return []miner.SearchResultParser{
		goquery.NewGoogleParser(),
		goquery.NewDuckDuckGoParser(),
	}
}

// newFetcher builds the page fetcher backend selected by name.
func newFetcher(kind string, stderr io.Writer) (miner.Fetcher, error) {
	switch kind {
	case "", "zenrows":
		apiKey := os.Getenv("ZENROWS_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "ZENROWS_API_KEY environment variable not set. Get an API key at https://www.zenrows.com")
			return nil, miner.Errorf(miner.ECONFIG, "ZenRows API key required")
		}
		return zenrows.NewFetcher(apiKey)
	case "http":
		return minerhttp.NewFetcher(), nil
	case "rod":
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	default:
		return nil, miner.Errorf(miner.ECONFIG, "unknown fetcher %q", kind)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("B2BMINER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "b2bminer.db"
	}
	dir := filepath.Join(home, ".b2bminer")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "b2bminer.db")
}
