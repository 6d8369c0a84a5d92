package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fanza"
)

// Compile-time interface verification.
var _ fanza.ProductService = (*ProductService)(nil)

// ProductService implements fanza.ProductService using SQLite.
type ProductService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db, Now: time.Now}
}

const productColumns = `id, link, title, circle, preview_images, rating, description,
	release_date, game_genre, series, genres, icon_url, content_hash, fetched_at`

// HashProduct computes the xxHash of the extracted fields of p as a hex
// string. Storage fields do not contribute to the hash.
func HashProduct(p *fanza.Product) (string, error) {
	extracted := *p
	extracted.ContentHash = ""
	extracted.FetchedAt = time.Time{}

	b, err := json.Marshal(&extracted)
	if err != nil {
		return "", err
	}

	h := xxhash.New()
	if _, err := h.Write(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// SaveProduct inserts the product or replaces the record with the same id.
func (s *ProductService) SaveProduct(ctx context.Context, product *fanza.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	hash, err := HashProduct(product)
	if err != nil {
		return fmt.Errorf("failed to hash product: %w", err)
	}
	previews, err := nullList(product.PreviewImages)
	if err != nil {
		return fmt.Errorf("failed to encode preview_images: %w", err)
	}
	genres, err := nullList(product.Genres)
	if err != nil {
		return fmt.Errorf("failed to encode genres: %w", err)
	}
	fetchedAt := s.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			link = excluded.link,
			title = excluded.title,
			circle = excluded.circle,
			preview_images = excluded.preview_images,
			rating = excluded.rating,
			description = excluded.description,
			release_date = excluded.release_date,
			game_genre = excluded.game_genre,
			series = excluded.series,
			genres = excluded.genres,
			icon_url = excluded.icon_url,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, product.ID, product.Link, nullString(product.Title), nullString(product.Circle), previews,
		product.Rating, nullString(product.Description), nullDate(product.ReleaseDate),
		nullString(product.GameGenre), nullString(product.Series), genres, product.IconURL,
		hash, fetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	product.ContentHash = hash
	product.FetchedAt = fetchedAt
	return nil
}

// FindProductByID retrieves a product by catalog id.
func (s *ProductService) FindProductByID(ctx context.Context, id string) (*fanza.Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fanza.Errorf(fanza.ENOTFOUND, "product not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindProducts retrieves products matching the filter.
func (s *ProductService) FindProducts(ctx context.Context, filter fanza.ProductFilter) ([]*fanza.Product, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + productColumns + ` FROM products WHERE 1=1`)

	if filter.Circle != nil {
		query.WriteString(" AND circle = ?")
		args = append(args, *filter.Circle)
	}
	if filter.Series != nil {
		query.WriteString(" AND series = ?")
		args = append(args, *filter.Series)
	}

	switch filter.SortBy {
	case fanza.SortByTitle:
		query.WriteString(" ORDER BY title ASC, id ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC, id ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*fanza.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// DeleteProduct permanently removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fanza.Errorf(fanza.ENOTFOUND, "product not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*fanza.Product, error) {
	var p fanza.Product
	var title, circle, previews, description, releaseDate, gameGenre, series, genres sql.NullString
	var fetchedAt string

	if err := row.Scan(&p.ID, &p.Link, &title, &circle, &previews, &p.Rating, &description,
		&releaseDate, &gameGenre, &series, &genres, &p.IconURL, &p.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	p.Title = stringPtr(title)
	p.Circle = stringPtr(circle)
	p.Description = stringPtr(description)
	p.GameGenre = stringPtr(gameGenre)
	p.Series = stringPtr(series)

	var err error
	if p.PreviewImages, err = parseList(previews, "preview_images"); err != nil {
		return nil, err
	}
	if p.Genres, err = parseList(genres, "genres"); err != nil {
		return nil, err
	}
	if p.ReleaseDate, err = parseDate(releaseDate); err != nil {
		return nil, err
	}
	if p.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &p, nil
}
