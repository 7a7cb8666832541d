package mock

import "github.com/fwojciec/postforge"

var _ postforge.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of postforge.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*postforge.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*postforge.ExtractResult, error) {
	return e.ExtractFn(html)
}
