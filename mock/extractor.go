package mock

import "github.com/fwojciec/fanza"

var _ fanza.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of fanza.ProductExtractor.
type ProductExtractor struct {
	ExtractProductFn func(doc fanza.Node, id string) (*fanza.Product, error)
}

func (e *ProductExtractor) ExtractProduct(doc fanza.Node, id string) (*fanza.Product, error) {
	return e.ExtractProductFn(doc, id)
}

var _ fanza.SearchExtractor = (*SearchExtractor)(nil)

// SearchExtractor is a mock implementation of fanza.SearchExtractor.
type SearchExtractor struct {
	ExtractSearchFn func(doc fanza.Node) ([]fanza.SearchHit, error)
}

func (e *SearchExtractor) ExtractSearch(doc fanza.Node) ([]fanza.SearchHit, error) {
	return e.ExtractSearchFn(doc)
}
