package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fanza"
	"github.com/fwojciec/fanza/extract"
	"github.com/fwojciec/fanza/fs"
	"github.com/fwojciec/fanza/goquery"
	"github.com/fwojciec/fanza/htmltomarkdown"
	fanzahttp "github.com/fwojciec/fanza/http"
	"github.com/fwojciec/fanza/rod"
	"github.com/fwojciec/fanza/scrape"
	fanzaslog "github.com/fwojciec/fanza/slog"
	"github.com/fwojciec/fanza/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ProductService fanza.ProductService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fanza"),
		kong.Description("Scrape and catalog FANZA game listings."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fanza --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Selected().Name

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FANZA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ProductService = sqlite.NewProductService(m.DB)
	deps.Products = m.ProductService
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewWriter = func(dir string) fanza.ProductWriter {
		return fs.NewWriter(dir, deps.Converter)
	}

	logger := newLogger(stderr, cli.Verbose)

	if cmd == "get" || cmd == "search" {
		fetcher, err := newFetcher(cli)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		// Each attempt is logged; retries wrap the logging fetcher.
		retrying := scrape.NewRetryFetcher(
			fanzaslog.NewLoggingFetcher(fetcher, logger),
			scrape.BackoffDelays(cli.Retries),
		)

		scraper := &scrape.Scraper{
			Fetcher:          retrying,
			Parser:           goquery.NewParser(),
			ProductExtractor: extract.NewProductExtractor(),
			SearchExtractor:  extract.NewSearchExtractor(),
			RateLimiter:      scrape.NewDomainLimiter(cli.RPS),
			Concurrency:      cli.Concurrency,
		}
		deps.Scraper = fanzaslog.NewLoggingScraper(scraper, logger)
	}

	return kongCtx.Run(deps)
}

// newLogger logs to stderr when verbose is set and discards otherwise.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newFetcher(cli *CLI) (fanza.Fetcher, error) {
	if !cli.Browser {
		return fanzahttp.NewFetcher(fanzahttp.WithTimeout(cli.Timeout)), nil
	}
	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
	}
	return fetcher, nil
}

func defaultDBPath() string {
	if path := os.Getenv("FANZA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fanza.db"
	}
	dir := filepath.Join(home, ".fanza")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "fanza.db")
}
