package extract

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/fanza"
)

// releaseDateLayout is the site's yyyy/MM/dd date format.
const releaseDateLayout = "2006/01/02"

// first returns the first node or nil.
func first(nodes []fanza.Node) fanza.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// isTag reports whether n is an element with the given tag name.
func isTag(n fanza.Node, tag string) bool {
	return strings.EqualFold(n.TagName(), tag)
}

// firstChildTag returns the first element child with the given tag name.
func firstChildTag(n fanza.Node, tag string) fanza.Node {
	for _, child := range n.Children() {
		if isTag(child, tag) {
			return child
		}
	}
	return nil
}

func trimmedText(n fanza.Node) string {
	return strings.TrimSpace(n.Text())
}

func stringPtr(s string) *string {
	return &s
}

// parseReleaseDate parses "2021/12/25" or "2021/12/25 00:00", discarding
// everything after the first space. Returns nil when the date is invalid.
func parseReleaseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i > -1 {
		s = s[:i]
	}
	t, err := time.Parse(releaseDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseRating parses a review average such as "4.25点".
func parseRating(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, pointsSuffix, "")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fanza.Errorf(fanza.EINVALID, "invalid review average %q", s)
	}
	return v, nil
}

// resolveURL resolves ref against base. Returns ref unchanged if either
// cannot be parsed.
func resolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
