package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fanza"
)

// Ensure LoggingScraper implements fanza.Scraper.
var _ fanza.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging of each catalog operation.
type LoggingScraper struct {
	next   fanza.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next fanza.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

func (s *LoggingScraper) ScrapeProduct(ctx context.Context, id string) (product *fanza.Product, err error) {
	defer func(begin time.Time) {
		attrs := []any{"id", id}
		if product != nil {
			attrs = append(attrs, "rating", product.Rating)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("scrape product", attrs...)
	}(time.Now())
	return s.next.ScrapeProduct(ctx, id)
}

func (s *LoggingScraper) ScrapeProducts(ctx context.Context, ids []string) (products []*fanza.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scrape products",
			"count", len(ids),
			"scraped", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScrapeProducts(ctx, ids)
}

func (s *LoggingScraper) Search(ctx context.Context, term string) (hits []fanza.SearchHit, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"term", term,
			"count", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, term)
}
