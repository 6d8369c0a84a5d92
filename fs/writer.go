// Package fs exports products as Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/fanza"
)

// ProductPath returns the file name a product is exported to.
func ProductPath(id string) string {
	return id + ".md"
}

// FormatProduct formats a product as Markdown with YAML frontmatter.
// description is the product description already converted to Markdown.
// Absent fields are left out of the frontmatter.
func FormatProduct(p *fanza.Product, description string) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeField(&b, "id", strconv.Quote(p.ID))
	writeField(&b, "link", strconv.Quote(p.Link))
	if p.Title != nil {
		writeField(&b, "title", strconv.Quote(*p.Title))
	}
	if p.Circle != nil {
		writeField(&b, "circle", strconv.Quote(*p.Circle))
	}
	writeField(&b, "rating", strconv.FormatFloat(p.Rating, 'f', -1, 64))
	if p.ReleaseDate != nil {
		writeField(&b, "release_date", p.ReleaseDate.Format("2006-01-02"))
	}
	if p.GameGenre != nil {
		writeField(&b, "game_genre", strconv.Quote(*p.GameGenre))
	}
	if p.Series != nil {
		writeField(&b, "series", strconv.Quote(*p.Series))
	}
	if p.Genres != nil {
		writeList(&b, "genres", p.Genres)
	}
	writeField(&b, "icon", strconv.Quote(p.IconURL))
	if p.PreviewImages != nil {
		writeList(&b, "previews", p.PreviewImages)
	}
	if !p.FetchedAt.IsZero() {
		writeField(&b, "fetched", p.FetchedAt.Format("2006-01-02"))
	}
	b.WriteString("---\n")

	if p.Title != nil {
		b.WriteString("\n# ")
		b.WriteString(*p.Title)
		b.WriteString("\n")
	}
	if description != "" {
		b.WriteString("\n")
		b.WriteString(description)
		b.WriteString("\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func writeList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		writeField(b, key, "[]")
		return
	}
	b.WriteString(key)
	b.WriteString(":\n")
	for _, v := range values {
		b.WriteString("  - ")
		b.WriteString(strconv.Quote(v))
		b.WriteString("\n")
	}
}

// Ensure Writer implements fanza.ProductWriter at compile time.
var _ fanza.ProductWriter = (*Writer)(nil)

// Writer writes products as markdown files to a directory.
type Writer struct {
	baseDir   string
	converter fanza.Converter
}

// NewWriter creates a new Writer that writes to the given base directory
// and converts descriptions with converter.
func NewWriter(baseDir string, converter fanza.Converter) *Writer {
	return &Writer{baseDir: baseDir, converter: converter}
}

// WriteProduct writes a product to disk as <baseDir>/<id>.md.
func (w *Writer) WriteProduct(ctx context.Context, p *fanza.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var description string
	if p.Description != nil {
		md, err := w.converter.Convert(*p.Description)
		if err != nil {
			return err
		}
		description = md
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, ProductPath(p.ID))
	return os.WriteFile(fullPath, []byte(FormatProduct(p, description)), 0644)
}
