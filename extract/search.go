package extract

import (
	"github.com/fwojciec/fanza"
)

// Search page class names.
const (
	classThumbnail = "tmb"
	className      = "txt"
)

// Ensure SearchExtractor implements fanza.SearchExtractor at compile time.
var _ fanza.SearchExtractor = (*SearchExtractor)(nil)

// SearchExtractor extracts hits from search results pages.
type SearchExtractor struct{}

// NewSearchExtractor creates a new SearchExtractor.
func NewSearchExtractor() *SearchExtractor {
	return &SearchExtractor{}
}

// ExtractSearch returns the hits of a search results page in document order.
// The error is always nil; unusable candidates are dropped.
func (e *SearchExtractor) ExtractSearch(doc fanza.Node) ([]fanza.SearchHit, error) {
	hits := []fanza.SearchHit{}
	for _, tmb := range doc.ElementsByClassName(classThumbnail) {
		if !isTag(tmb, "p") {
			continue
		}

		anchor := firstChildTag(tmb, "a")
		if anchor == nil {
			continue
		}

		href, _ := anchor.Attr("href")
		id, ok := fanza.ResolveID(href)
		if !ok {
			continue
		}

		name := first(anchor.ElementsByClassName(className))
		if name == nil {
			continue
		}

		hits = append(hits, fanza.SearchHit{Name: trimmedText(name), ID: id})
	}
	return hits, nil
}
