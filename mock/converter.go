package mock

import "github.com/fwojciec/postforge"

var _ postforge.Converter = (*Converter)(nil)

// Converter is a mock implementation of postforge.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
