package mock

import "github.com/fwojciec/postforge"

var _ postforge.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of postforge.MetadataParser.
type MetadataParser struct {
	ParseMetadataFn func(html string) (*postforge.PageMetadata, error)
}

func (m *MetadataParser) ParseMetadata(html string) (*postforge.PageMetadata, error) {
	return m.ParseMetadataFn(html)
}
