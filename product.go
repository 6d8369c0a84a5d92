package fanza

import (
	"context"
	"time"
)

// Product represents the metadata extracted from one catalog detail page.
//
// Optional fields are nil when the page does not carry them. PreviewImages
// and Genres distinguish nil (section absent) from empty (section present
// but without entries); consumers rely on the difference.
type Product struct {
	ID            string     `json:"id"`
	Link          string     `json:"link"`
	Title         *string    `json:"title"`
	Circle        *string    `json:"circle"`
	PreviewImages []string   `json:"previewImages"`
	Rating        float64    `json:"rating"`
	Description   *string    `json:"description"`
	ReleaseDate   *time.Time `json:"releaseDate"`
	GameGenre     *string    `json:"gameGenre"`
	Series        *string    `json:"series"`
	Genres        []string   `json:"genres"`
	IconURL       string     `json:"iconUrl"`

	// Set by storage.
	ContentHash string    `json:"contentHash,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt,omitzero"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "product catalog id required")
	}
	if !IsValidID(p.ID) {
		return Errorf(EINVALID, "invalid catalog id %q", p.ID)
	}
	if p.Link == "" {
		return Errorf(EINVALID, "product link required")
	}
	return nil
}

// ProductExtractor derives a Product from a parsed detail page.
type ProductExtractor interface {
	// ExtractProduct reads the detail page document for the given catalog id.
	// Returns ENOTFOUND if the review average is missing and EINVALID if it
	// cannot be parsed. Every other field degrades to absent.
	ExtractProduct(doc Node, id string) (*Product, error)
}

// ProductService represents a service for managing extracted products.
type ProductService interface {
	// SaveProduct inserts the product or replaces the stored record with
	// the same catalog id. ContentHash and FetchedAt are set on save.
	SaveProduct(ctx context.Context, product *Product) error

	// FindProductByID retrieves a product by catalog id.
	// Returns ENOTFOUND if product does not exist.
	FindProductByID(ctx context.Context, id string) (*Product, error)

	// FindProducts retrieves products matching the filter.
	FindProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)

	// DeleteProduct permanently removes a product.
	// Returns ENOTFOUND if product does not exist.
	DeleteProduct(ctx context.Context, id string) error
}

// SortOrder represents the sort order for product queries.
type SortOrder string

// SortOrder constants for ProductFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByTitle     SortOrder = "title"
)

// ProductFilter represents a filter for FindProducts.
type ProductFilter struct {
	Circle *string `json:"circle"`
	Series *string `json:"series"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// ProductWriter exports products outside the database.
type ProductWriter interface {
	WriteProduct(ctx context.Context, product *Product) error
}
