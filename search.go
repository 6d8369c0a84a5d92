package fanza

// SearchHit is one catalog entry found on a search results page.
type SearchHit struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SearchExtractor derives search hits from a parsed search results page.
type SearchExtractor interface {
	// ExtractSearch returns hits in document order. Candidates without a
	// resolvable catalog id or a name are dropped, never returned partially.
	ExtractSearch(doc Node) ([]SearchHit, error)
}
