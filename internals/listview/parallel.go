package listview

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Loader fills its own destination; a returned error cancels the siblings.
type Loader func(ctx context.Context) error

// LoadParallel starts every loader at once and waits for all of them.
func LoadParallel(ctx context.Context, loaders ...Loader) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, l := range loaders {
		if l == nil {
			continue
		}
		load := l
		g.Go(func() error { return load(gctx) })
	}
	return g.Wait()
}
