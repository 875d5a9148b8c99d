package mock

import "github.com/fwojciec/jobsnap"

var _ jobsnap.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobsnap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
