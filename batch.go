package hashvec

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hupe1980/hashvec/dense"
	"github.com/hupe1980/hashvec/sparse"
	"golang.org/x/sync/errgroup"
)

// DotMany returns d·vs[i] for every i, evaluating items concurrently.
//
// The first failing item cancels the rest and its error is returned, wrapped
// with the item position. Cancelling ctx stops items that have not started.
// d and vs are only read.
func DotMany[E any](ctx context.Context, r *Registry, d *dense.Vector[E], vs []*sparse.Vector[E], optFns ...BatchOption) ([]E, error) {
	if r == nil {
		r = Default
	}
	dot, err := BindDotDenseSparse[E](r)
	if err != nil {
		return nil, err
	}
	o := applyBatchOptions(optFns)

	start := time.Now()
	out := make([]E, len(vs))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, v := range vs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			x, err := dot(d, v)
			if err != nil {
				failed.Add(1)
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = x
			return nil
		})
	}
	err = g.Wait()

	r.opts.metricsCollector.RecordBatch(len(vs), int(failed.Load()), time.Since(start))
	r.opts.logger.LogBatch(ctx, len(vs), int(failed.Load()), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
