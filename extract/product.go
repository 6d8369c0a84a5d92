// Package extract derives catalog records from parsed FANZA pages.
//
// Extraction works purely on fanza.Node values and holds no state, so the
// extractors are safe for concurrent use across independent documents.
package extract

import (
	"strings"

	"github.com/fwojciec/fanza"
)

// Detail page class names.
const (
	classTitle        = "productTitle__headline"
	classTopRow       = "contentsDetailTop__tableRow"
	classSliderArea   = "slider-area"
	classImageSlider  = "image-slider"
	classReviewAvg    = "d-review__average"
	classDescription  = "read-text-area"
	classBottomRow    = "contentsDetailBottom__tableRow"
	classBottomLeft   = "contentsDetailBottom__tableDataLeft"
	classBottomRight  = "contentsDetailBottom__tableDataRight"
	classGenreTagLink = "component-textLink component-textLink__state component-textLink__state--initial"
)

// Label tokens used by the site.
const (
	labelBrand       = "ブランド"
	labelReleaseDate = "配信開始日"
	labelGameGenre   = "ゲームジャンル"
	labelSeries      = "シリーズ"
	labelGenres      = "ジャンル"

	pointsSuffix   = "点"
	seriesSentinel = "----"
)

// Ensure ProductExtractor implements fanza.ProductExtractor at compile time.
var _ fanza.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor extracts products from detail pages.
type ProductExtractor struct{}

// NewProductExtractor creates a new ProductExtractor.
func NewProductExtractor() *ProductExtractor {
	return &ProductExtractor{}
}

// ExtractProduct derives a Product from a detail page document.
func (e *ProductExtractor) ExtractProduct(doc fanza.Node, id string) (*fanza.Product, error) {
	rating, err := extractRating(doc)
	if err != nil {
		return nil, err
	}

	link := fanza.DetailURL(id)
	p := &fanza.Product{
		ID:            id,
		Link:          link,
		Title:         extractTitle(doc),
		Circle:        extractCircle(doc),
		PreviewImages: extractPreviewImages(doc, link),
		Rating:        rating,
		Description:   extractDescription(doc),
		IconURL:       fanza.IconURL(id),
	}
	extractDetails(doc, p)

	return p, nil
}

// extractTitle reads the h1 product heading. Other tags sharing the class
// are ignored.
func extractTitle(doc fanza.Node) *string {
	for _, n := range doc.ElementsByClassName(classTitle) {
		if isTag(n, "h1") {
			return stringPtr(trimmedText(n))
		}
	}
	return nil
}

// extractCircle returns the brand link text. Every matching row is visited
// and the last one wins.
func extractCircle(doc fanza.Node) *string {
	var circle *string
	for _, row := range doc.ElementsByClassName(classTopRow) {
		cells := row.ElementsByTagName("td")
		if len(cells) < 2 || !strings.Contains(cells[0].Text(), labelBrand) {
			continue
		}
		if link := first(cells[1].ElementsByTagName("a")); link != nil {
			circle = stringPtr(trimmedText(link))
		}
	}
	return circle
}

// extractPreviewImages returns the non-blank slider image sources resolved
// against the page link, or nil when there are none.
func extractPreviewImages(doc fanza.Node, link string) []string {
	area := first(doc.ElementsByClassName(classSliderArea))
	if area == nil {
		return nil
	}
	slider := first(area.ElementsByClassName(classImageSlider))
	if slider == nil {
		return nil
	}

	var images []string
	for _, img := range slider.ElementsByTagName("img") {
		src, _ := img.Attr("src")
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		images = append(images, resolveURL(link, src))
	}
	return images
}

func extractRating(doc fanza.Node) (float64, error) {
	avg := first(doc.ElementsByClassName(classReviewAvg))
	if avg == nil {
		return 0, fanza.Errorf(fanza.ENOTFOUND, "review average not found")
	}
	strong := first(avg.ElementsByTagName("strong"))
	if strong == nil {
		return 0, fanza.Errorf(fanza.ENOTFOUND, "review average score not found")
	}
	return parseRating(strong.Text())
}

func extractDescription(doc fanza.Node) *string {
	n := first(doc.ElementsByClassName(classDescription))
	if n == nil {
		return nil
	}
	return stringPtr(n.InnerHTML())
}

// extractDetails fills the fields carried by the labeled rows at the bottom
// of the page. Unknown labels are ignored.
func extractDetails(doc fanza.Node, p *fanza.Product) {
	for _, row := range doc.ElementsByClassName(classBottomRow) {
		left := first(row.ElementsByClassName(classBottomLeft))
		if left == nil {
			continue
		}
		label := trimmedText(left)

		var value *string
		if right := first(row.ElementsByClassName(classBottomRight)); right != nil {
			value = stringPtr(trimmedText(right))
		}

		switch {
		case strings.EqualFold(label, labelReleaseDate):
			if value == nil {
				continue
			}
			if date := parseReleaseDate(*value); date != nil {
				p.ReleaseDate = date
			}
		case strings.EqualFold(label, labelGameGenre):
			if value == nil {
				continue
			}
			p.GameGenre = value
		case strings.EqualFold(label, labelSeries):
			if value == nil || *value == seriesSentinel {
				continue
			}
			p.Series = value
		case strings.EqualFold(label, labelGenres):
			tags := row.ElementsByClassName(classGenreTagLink)
			genres := make([]string, 0, len(tags))
			for _, tag := range tags {
				genres = append(genres, trimmedText(tag))
			}
			p.Genres = genres
		}
	}
}
