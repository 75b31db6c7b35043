package pokeapi

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FetchAll fetches ids concurrently, at most limit at a time, and returns the
// records in the order of ids. The first failure cancels the others.
func FetchAll(ctx context.Context, f Fetcher, ids []string, limit int) ([]*Record, error) {
	out := make([]*Record, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, id := range ids {
		g.Go(func() error {
			rec, err := f.Fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			if rec == nil {
				return fmt.Errorf("%s: %w", id, &FetchError{Kind: ErrorEmpty})
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
