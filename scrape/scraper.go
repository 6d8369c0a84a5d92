// Package scrape ties fetching, parsing and extraction together into
// catalog operations.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/fanza"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of detail pages scraped at once by
// ScrapeProducts when Concurrency is unset.
const DefaultConcurrency = 4

var _ fanza.Scraper = (*Scraper)(nil)

// Scraper fetches catalog pages and extracts records from them.
// Scraper is safe for concurrent use if its collaborators are.
type Scraper struct {
	Fetcher          fanza.Fetcher
	Parser           fanza.Parser
	ProductExtractor fanza.ProductExtractor
	SearchExtractor  fanza.SearchExtractor

	// RateLimiter is optional.
	RateLimiter fanza.DomainLimiter
	Concurrency int
}

// ScrapeProduct fetches the detail page for id and extracts its product.
func (s *Scraper) ScrapeProduct(ctx context.Context, id string) (*fanza.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fanza.Errorf(fanza.EINVALID, "catalog id required")
	}
	if !fanza.IsValidID(id) {
		return nil, fanza.Errorf(fanza.EINVALID, "invalid catalog id %q", id)
	}

	doc, err := s.load(ctx, fanza.DetailURL(id))
	if err != nil {
		return nil, err
	}

	product, err := s.ProductExtractor.ExtractProduct(doc, id)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", id, err)
	}
	return product, nil
}

// ScrapeProducts scrapes ids concurrently, bounded by Concurrency.
// The first failure cancels the remaining work and is returned.
func (s *Scraper) ScrapeProducts(ctx context.Context, ids []string) ([]*fanza.Product, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	products := make([]*fanza.Product, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		g.Go(func() error {
			p, err := s.ScrapeProduct(gctx, id)
			if err != nil {
				return err
			}
			products[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return products, nil
}

// Search fetches the search results page for term and extracts its hits.
func (s *Scraper) Search(ctx context.Context, term string) ([]fanza.SearchHit, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fanza.Errorf(fanza.EINVALID, "search term required")
	}

	doc, err := s.load(ctx, fanza.SearchURL(term))
	if err != nil {
		return nil, err
	}

	hits, err := s.SearchExtractor.ExtractSearch(doc)
	if err != nil {
		return nil, fmt.Errorf("extract search %q: %w", term, err)
	}
	return hits, nil
}

// load waits for the rate limiter, fetches rawURL and parses the page.
func (s *Scraper) load(ctx context.Context, rawURL string) (fanza.Node, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fanza.Errorf(fanza.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	doc, err := s.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return doc, nil
}
