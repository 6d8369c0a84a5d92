package mock

import (
	"context"

	"github.com/fwojciec/fanza"
)

var _ fanza.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of fanza.Scraper.
type Scraper struct {
	ScrapeProductFn  func(ctx context.Context, id string) (*fanza.Product, error)
	ScrapeProductsFn func(ctx context.Context, ids []string) ([]*fanza.Product, error)
	SearchFn         func(ctx context.Context, term string) ([]fanza.SearchHit, error)
}

func (s *Scraper) ScrapeProduct(ctx context.Context, id string) (*fanza.Product, error) {
	return s.ScrapeProductFn(ctx, id)
}

func (s *Scraper) ScrapeProducts(ctx context.Context, ids []string) ([]*fanza.Product, error) {
	return s.ScrapeProductsFn(ctx, ids)
}

func (s *Scraper) Search(ctx context.Context, term string) ([]fanza.SearchHit, error) {
	return s.SearchFn(ctx, term)
}
