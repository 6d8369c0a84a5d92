package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/fanza"
	main "github.com/fwojciec/fanza/cmd/fanza"
	"github.com/fwojciec/fanza/htmltomarkdown"
	"github.com/fwojciec/fanza/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scraperFor returns a mock scraper that builds a product per requested id.
func scraperFor(t *testing.T, wantIDs []string) *mock.Scraper {
	t.Helper()
	return &mock.Scraper{
		ScrapeProductsFn: func(_ context.Context, ids []string) ([]*fanza.Product, error) {
			assert.Equal(t, wantIDs, ids)
			products := make([]*fanza.Product, len(ids))
			for i, id := range ids {
				products[i] = &fanza.Product{
					ID:      id,
					Link:    fanza.DetailURL(id),
					Title:   ptr("title " + id),
					Rating:  4,
					IconURL: fanza.IconURL(id),
				}
			}
			return products, nil
		},
	}
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a single product as a JSON object", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraperFor(t, []string{"views_0001"}),
		}

		err := (&main.GetCmd{IDs: []string{"views_0001"}}).Run(deps)
		require.NoError(t, err)

		var got fanza.Product
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "views_0001", got.ID)
		assert.Equal(t, "title views_0001", *got.Title)
	})

	t.Run("prints several products as a JSON array", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraperFor(t, []string{"a_1", "b_2"}),
		}

		err := (&main.GetCmd{IDs: []string{"a_1", "b_2"}}).Run(deps)
		require.NoError(t, err)

		var got []fanza.Product
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "a_1", got[0].ID)
		assert.Equal(t, "b_2", got[1].ID)
	})

	t.Run("resolves detail URLs to catalog ids", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Scraper: scraperFor(t, []string{"views_0001", "d_123456"}),
		}

		err := (&main.GetCmd{IDs: []string{
			"https://dlsoft.dmm.co.jp/detail/views_0001/",
			"https://www.dmm.co.jp/dc/doujin/-/detail/=/cid=d_123456/",
		}}).Run(deps)

		require.NoError(t, err)
	})

	t.Run("rejects unresolvable arguments before scraping", func(t *testing.T) {
		t.Parallel()

		for _, arg := range []string{"https://www.dmm.co.jp/list/", "../views"} {
			stderr := &bytes.Buffer{}
			deps := &main.Dependencies{
				Ctx:    context.Background(),
				Stdout: &bytes.Buffer{},
				Stderr: stderr,
				Scraper: &mock.Scraper{
					ScrapeProductsFn: func(context.Context, []string) ([]*fanza.Product, error) {
						t.Fatal("scraper should not be called")
						return nil, nil
					},
				},
			}

			err := (&main.GetCmd{IDs: []string{arg}}).Run(deps)

			require.Error(t, err, arg)
			assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(err), arg)
			assert.Contains(t, stderr.String(), "error:", arg)
		}
	})

	t.Run("reports scrape errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Scraper: &mock.Scraper{
				ScrapeProductsFn: func(context.Context, []string) ([]*fanza.Product, error) {
					return nil, fanza.Errorf(fanza.ENOTFOUND, "review average not found")
				},
			},
		}

		err := (&main.GetCmd{IDs: []string{"views_0001"}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: review average not found\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("saves products and reports their status", func(t *testing.T) {
		t.Parallel()

		stored := map[string]string{"a_1": "samehash", "b_2": "oldhash"}
		var saved []string
		products := &mock.ProductService{
			FindProductByIDFn: func(_ context.Context, id string) (*fanza.Product, error) {
				hash, ok := stored[id]
				if !ok {
					return nil, fanza.Errorf(fanza.ENOTFOUND, "product not found")
				}
				return &fanza.Product{ID: id, ContentHash: hash}, nil
			},
			SaveProductFn: func(_ context.Context, p *fanza.Product) error {
				saved = append(saved, p.ID)
				p.ContentHash = "samehash"
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Scraper:  scraperFor(t, []string{"a_1", "b_2", "c_3"}),
			Products: products,
		}

		err := (&main.GetCmd{IDs: []string{"a_1", "b_2", "c_3"}, Save: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"a_1", "b_2", "c_3"}, saved)
		assert.Contains(t, stderr.String(), "Saved a_1 (unchanged)")
		assert.Contains(t, stderr.String(), "Saved b_2 (updated)")
		assert.Contains(t, stderr.String(), "Saved c_3 (new)")
	})

	t.Run("stops when lookup fails", func(t *testing.T) {
		t.Parallel()

		products := &mock.ProductService{
			FindProductByIDFn: func(context.Context, string) (*fanza.Product, error) {
				return nil, fanza.Errorf(fanza.EINTERNAL, "database is locked")
			},
			SaveProductFn: func(context.Context, *fanza.Product) error {
				t.Fatal("save should not be called")
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Scraper:  scraperFor(t, []string{"a_1"}),
			Products: products,
		}

		err := (&main.GetCmd{IDs: []string{"a_1"}, Save: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "database is locked")
	})

	t.Run("prints markdown", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Scraper:   scraperFor(t, []string{"views_0001"}),
			Converter: htmltomarkdown.NewConverter(),
		}

		err := (&main.GetCmd{IDs: []string{"views_0001"}, Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `id: "views_0001"`)
		assert.Contains(t, stdout.String(), "# title views_0001")
	})
}
