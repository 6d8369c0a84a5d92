package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/fanza"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Products  fanza.ProductService
	Scraper   fanza.Scraper
	Converter fanza.Converter
	NewWriter func(dir string) fanza.ProductWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" env:"FANZA_VERBOSE" help:"Log fetches and scrapes to stderr"`
	Timeout     time.Duration `default:"10s" env:"FANZA_TIMEOUT" help:"Per-page fetch timeout"`
	RPS         float64       `name:"rps" default:"1" env:"FANZA_RPS" help:"Requests per second per host (0 disables limiting)"`
	Concurrency int           `short:"c" default:"4" env:"FANZA_CONCURRENCY" help:"Concurrent detail page fetches"`
	Retries     int           `default:"3" env:"FANZA_RETRIES" help:"Retries per failed fetch with 1s, 2s, 4s... backoff"`
	Browser     bool          `short:"b" env:"FANZA_BROWSER" help:"Fetch pages with headless Chrome"`

	Get    GetCmd    `cmd:"" help:"Scrape products by catalog id or detail URL"`
	Search SearchCmd `cmd:"" help:"Search the catalog"`
	List   ListCmd   `cmd:"" help:"List saved products"`
	Show   ShowCmd   `cmd:"" help:"Show a saved product"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved product"`
	Export ExportCmd `cmd:"" help:"Export saved products as Markdown files"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	IDs      []string `arg:"" name:"id" help:"Catalog ids or detail URLs"`
	Save     bool     `short:"s" help:"Save scraped products to the database"`
	Markdown bool     `short:"m" help:"Print Markdown instead of JSON"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" help:"Search term"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Circle string `help:"Only products by this circle"`
	Series string `help:"Only products in this series"`
	Sort   string `enum:"fetched_at,title" default:"fetched_at" help:"Sort order (fetched_at, title)"`
	Limit  int    `short:"n" help:"Maximum number of products"`
	Offset int    `help:"Number of products to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Catalog id"`
	Markdown bool   `short:"m" help:"Print Markdown instead of JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Catalog id"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" type:"path" help:"Output directory"`
	Circle string `help:"Only products by this circle"`
	Series string `help:"Only products in this series"`
}
