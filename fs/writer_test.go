package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/fanza"
	"github.com/fwojciec/fanza/fs"
	"github.com/fwojciec/fanza/htmltomarkdown"
	"github.com/fwojciec/fanza/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestFormatProduct(t *testing.T) {
	t.Parallel()

	t.Run("formats every field", func(t *testing.T) {
		t.Parallel()

		p := &fanza.Product{
			ID:            "views_0001",
			Link:          fanza.DetailURL("views_0001"),
			Title:         ptr("ドラゴンの館: 完全版"),
			Circle:        ptr("サークル竜"),
			PreviewImages: []string{"https://pics.dmm.co.jp/a.jpg"},
			Rating:        4.25,
			ReleaseDate:   ptr(time.Date(2023, 4, 28, 0, 0, 0, 0, time.UTC)),
			GameGenre:     ptr("RPG"),
			Series:        ptr("竜シリーズ"),
			Genres:        []string{"ファンタジー", "巨乳"},
			IconURL:       fanza.IconURL("views_0001"),
			FetchedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		}

		got := fs.FormatProduct(p, "説明文")

		want := `---
id: "views_0001"
link: "https://dlsoft.dmm.co.jp/detail/views_0001"
title: "ドラゴンの館: 完全版"
circle: "サークル竜"
rating: 4.25
release_date: 2023-04-28
game_genre: "RPG"
series: "竜シリーズ"
genres:
  - "ファンタジー"
  - "巨乳"
icon: "https://pics.dmm.co.jp/digital/game/d_views_0001/d_views_0001pt.jpg"
previews:
  - "https://pics.dmm.co.jp/a.jpg"
fetched: 2024-01-15
---

# ドラゴンの館: 完全版

説明文
`
		assert.Equal(t, want, got)
	})

	t.Run("omits absent fields and keeps empty lists", func(t *testing.T) {
		t.Parallel()

		p := &fanza.Product{
			ID:      "views_0002",
			Link:    fanza.DetailURL("views_0002"),
			Rating:  0,
			Genres:  []string{},
			IconURL: fanza.IconURL("views_0002"),
		}

		got := fs.FormatProduct(p, "")

		assert.Contains(t, got, "rating: 0\n")
		assert.Contains(t, got, "genres: []\n")
		assert.NotContains(t, got, "title:")
		assert.NotContains(t, got, "previews")
		assert.NotContains(t, got, "fetched:")
		assert.NotContains(t, got, "# ")
	})
}

func TestWriter_WriteProduct(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file named after the id", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "export")
		w := fs.NewWriter(dir, htmltomarkdown.NewConverter())

		p := &fanza.Product{
			ID:          "views_0001",
			Link:        fanza.DetailURL("views_0001"),
			Title:       ptr("ドラゴンの館"),
			Description: ptr("<p><strong>竜</strong>の館</p>"),
			IconURL:     fanza.IconURL("views_0001"),
		}

		err := w.WriteProduct(context.Background(), p)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "views_0001.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `title: "ドラゴンの館"`)
		assert.Contains(t, string(content), "**竜**の館")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, htmltomarkdown.NewConverter())
		ctx := context.Background()

		p := &fanza.Product{ID: "views_0001", Link: fanza.DetailURL("views_0001"), Title: ptr("old")}
		require.NoError(t, w.WriteProduct(ctx, p))
		p.Title = ptr("new")
		require.NoError(t, w.WriteProduct(ctx, p))

		content, err := os.ReadFile(filepath.Join(dir, "views_0001.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `title: "new"`)
		assert.NotContains(t, string(content), `"old"`)
	})

	t.Run("returns error for invalid product", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), htmltomarkdown.NewConverter())

		err := w.WriteProduct(context.Background(), &fanza.Product{ID: "../escape", Link: "x"})

		require.Error(t, err)
		assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(err))
	})

	t.Run("returns converter errors", func(t *testing.T) {
		t.Parallel()

		convErr := errors.New("bad markup")
		w := fs.NewWriter(t.TempDir(), &mock.Converter{
			ConvertFn: func(string) (string, error) { return "", convErr },
		})

		p := &fanza.Product{ID: "views_0001", Link: fanza.DetailURL("views_0001"), Description: ptr("<p>")}
		err := w.WriteProduct(context.Background(), p)

		require.ErrorIs(t, err, convErr)
	})
}
