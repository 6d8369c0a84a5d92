package fanza

import "context"

// Scraper fetches catalog pages and extracts records from them.
type Scraper interface {
	// ScrapeProduct fetches and extracts the detail page for a catalog id.
	ScrapeProduct(ctx context.Context, id string) (*Product, error)

	// ScrapeProducts scrapes several catalog ids concurrently.
	// Results are returned in the order of ids.
	ScrapeProducts(ctx context.Context, ids []string) ([]*Product, error)

	// Search fetches the search results page for term.
	Search(ctx context.Context, term string) ([]SearchHit, error)
}
