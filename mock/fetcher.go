package mock

import (
	"context"

	"github.com/fwojciec/cookalong"
)

var _ cookalong.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cookalong.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
