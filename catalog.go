package fanza

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Catalog URL templates. Callers build fetch URLs from these.
const (
	DetailBaseURL = "https://dlsoft.dmm.co.jp/detail/"
	IconURLFormat = "https://pics.dmm.co.jp/digital/game/d_%[1]s/d_%[1]spt.jpg"
	SearchBaseURL = "https://www.dmm.co.jp/search/=/searchstr="
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// IsValidID reports whether id has the shape of a catalog id.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

// DetailURL returns the detail page URL for a catalog id.
func DetailURL(id string) string {
	return DetailBaseURL + id
}

// IconURL returns the icon image URL for a catalog id.
func IconURL(id string) string {
	return fmt.Sprintf(IconURLFormat, id)
}

// SearchURL returns the search results URL for a free-text term.
func SearchURL(term string) string {
	return SearchBaseURL + url.PathEscape(term)
}

// ResolveID extracts the catalog id from a detail link.
//
// Two link shapes are recognized: /detail/<id> (the DetailBaseURL shape) and
// a cid=<id> path segment as used by older catalog links. Returns false for
// anything else.
func ResolveID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	segments := strings.Split(u.Path, "/")
	for i, seg := range segments {
		if seg == "detail" && i+1 < len(segments) && IsValidID(segments[i+1]) {
			return segments[i+1], true
		}
		if id, ok := strings.CutPrefix(seg, "cid="); ok && IsValidID(id) {
			return id, true
		}
	}
	return "", false
}
