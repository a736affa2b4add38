package guga

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of subsets handed to a worker at once.
const DefaultBatchSize = 256

// batchResult is the outcome of one batch, in enumeration order.
type batchResult struct {
	dets []Determinant
	err  error
}

// WalkParallel is Walk spread over workers goroutines. Subsets are cut into
// batches of batchSize in enumeration order and fn still sees determinants
// in exactly the order Walk produces them. fn runs on the calling goroutine.
//
// The walk stops when fn returns an error (ErrStop ends it cleanly), an
// evaluation fails or ctx is cancelled; no goroutines outlive the call.
func (e *Expansion) WalkParallel(ctx context.Context, workers, batchSize int, fn func(Determinant) error) error {
	if workers <= 1 {
		return e.WalkContext(ctx, fn)
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	comb, err := NewCombination(e.Params.NSOMO, e.Params.NAlpha)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Each batch gets a one-slot result channel. The channels are queued in
	// enumeration order, which is the order the consumer drains them in.
	pending := make(chan chan batchResult, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(pending)

		var work errgroup.Group
		work.SetLimit(workers)
		defer func() { _ = work.Wait() }()

		for more := true; more; {
			batch := make([][]int, 0, batchSize)
			for len(batch) < batchSize && more {
				batch = append(batch, append([]int(nil), comb.Indices()...))
				more = comb.Next()
			}

			out := make(chan batchResult, 1)
			select {
			case pending <- out:
			case <-gctx.Done():
				return gctx.Err()
			}
			work.Go(func() error {
				ev := newEvaluator(e.StepVector, e.Table)
				dets := make([]Determinant, 0, len(batch))
				for _, subset := range batch {
					det, ok, err := ev.evaluate(subset)
					if err != nil {
						out <- batchResult{dets: dets, err: err}
						return nil
					}
					if ok {
						dets = append(dets, det)
					}
				}
				out <- batchResult{dets: dets}
				return nil
			})
		}
		return nil
	})

	var walkErr error
	for out := range pending {
		res := <-out
		if walkErr == nil && ctx.Err() != nil {
			walkErr = ctx.Err()
		}
		if walkErr != nil {
			continue
		}
		for _, det := range res.dets {
			if err := fn(det); err != nil {
				walkErr = err
				cancel()
				break
			}
		}
		// Determinants evaluated before the failure are still delivered.
		if walkErr == nil && res.err != nil {
			walkErr = res.err
			cancel()
		}
	}

	genErr := g.Wait()
	switch {
	case walkErr != nil:
		if errors.Is(walkErr, ErrStop) {
			return nil
		}
		return walkErr
	case genErr != nil:
		return genErr
	}
	return nil
}
