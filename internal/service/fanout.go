package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultFanout bounds concurrent upstream calls when no limit is configured.
const DefaultFanout = 8

// fanOut calls fn for every index in [0, n) with at most limit calls in
// flight and waits for all of them. fn owns its failure handling; results
// are written by index so callers keep input order.
func fanOut(ctx context.Context, n, limit int, fn func(ctx context.Context, i int)) {
	if limit <= 0 {
		limit = DefaultFanout
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
}
