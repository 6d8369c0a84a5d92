package mock

import "github.com/fwojciec/fanza"

var _ fanza.Parser = (*Parser)(nil)

// Parser is a mock implementation of fanza.Parser.
type Parser struct {
	ParseFn func(html string) (fanza.Node, error)
}

func (p *Parser) Parse(html string) (fanza.Node, error) {
	return p.ParseFn(html)
}
