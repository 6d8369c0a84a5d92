// Package goquery implements fanza.Parser and fanza.Node on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fanza"
	"golang.org/x/net/html"
)

// Ensure Parser implements fanza.Parser at compile time.
var _ fanza.Parser = (*Parser)(nil)

// Parser parses HTML pages into goquery-backed nodes.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and returns the document root.
func (p *Parser) Parse(src string) (fanza.Node, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fanza.Errorf(fanza.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewNode(goquery.NewDocumentFromNode(root).Selection), nil
}
