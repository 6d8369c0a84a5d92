package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/fanza"
	"github.com/fwojciec/fanza/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements fanza.Converter at compile time.
var _ fanza.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts description paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<p>竜の館で目覚めた主人公は……</p><p>二つ目の段落</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "竜の館で目覚めた主人公は……\n\n二つ目の段落", md)
	})

	t.Run("keeps line breaks", func(t *testing.T) {
		t.Parallel()

		html := `一行目<br>二行目`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "一行目")
		assert.Contains(t, md, "\n二行目")
	})

	t.Run("converts emphasis and links", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>注意</strong> <a href="https://www.dmm.co.jp/">FANZA</a></p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**注意**")
		assert.Contains(t, md, "[FANZA](https://www.dmm.co.jp/)")
	})

	t.Run("converts requirement tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>OS</th><th>メモリ</th></tr></thead><tbody><tr><td>Windows 10</td><td>4GB</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| OS")
		assert.Contains(t, md, "Windows 10")
	})

	t.Run("returns empty string for blank input", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("  \n ")

		require.NoError(t, err)
		assert.Empty(t, md)
	})
}
