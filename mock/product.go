package mock

import (
	"context"

	"github.com/fwojciec/fanza"
)

var _ fanza.ProductService = (*ProductService)(nil)

// ProductService is a mock implementation of fanza.ProductService.
type ProductService struct {
	SaveProductFn     func(ctx context.Context, product *fanza.Product) error
	FindProductByIDFn func(ctx context.Context, id string) (*fanza.Product, error)
	FindProductsFn    func(ctx context.Context, filter fanza.ProductFilter) ([]*fanza.Product, error)
	DeleteProductFn   func(ctx context.Context, id string) error
}

func (s *ProductService) SaveProduct(ctx context.Context, product *fanza.Product) error {
	return s.SaveProductFn(ctx, product)
}

func (s *ProductService) FindProductByID(ctx context.Context, id string) (*fanza.Product, error) {
	return s.FindProductByIDFn(ctx, id)
}

func (s *ProductService) FindProducts(ctx context.Context, filter fanza.ProductFilter) ([]*fanza.Product, error) {
	return s.FindProductsFn(ctx, filter)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.DeleteProductFn(ctx, id)
}

var _ fanza.ProductWriter = (*ProductWriter)(nil)

// ProductWriter is a mock implementation of fanza.ProductWriter.
type ProductWriter struct {
	WriteProductFn func(ctx context.Context, product *fanza.Product) error
}

func (w *ProductWriter) WriteProduct(ctx context.Context, product *fanza.Product) error {
	return w.WriteProductFn(ctx, product)
}
