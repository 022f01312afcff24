package mock

import "github.com/fwojciec/feedscan"

var _ feedscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of feedscan.Extractor.
type Extractor struct {
	ExtractFn func(data []byte, sourceFile string) ([]*feedscan.Job, error)
}

func (e *Extractor) Extract(data []byte, sourceFile string) ([]*feedscan.Job, error) {
	return e.ExtractFn(data, sourceFile)
}
