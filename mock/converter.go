package mock

import "github.com/fwojciec/fanza"

var _ fanza.Converter = (*Converter)(nil)

// Converter is a mock implementation of fanza.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
