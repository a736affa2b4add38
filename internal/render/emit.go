package render

import (
	"context"
	"errors"
	"math/big"

	"csf2det/internal/guga"
	"csf2det/internal/logging"

	"go.uber.org/zap"
)

// WalkOptions control how an expansion is walked into an emitter.
type WalkOptions struct {
	Workers         int  // >1 walks in parallel, order preserved
	BatchSize       int  // subsets per parallel batch
	MaxDeterminants int  // 0 means no cap
	Check           bool // accumulate the sum of weights
}

// Emit walks exp into em and returns the completed summary. When the walk
// fails, em is still ended with a truncated summary and no norm.
func Emit(ctx context.Context, em Emitter, s Summary, exp *guga.Expansion, opts WalkOptions) (Summary, error) {
	log := logging.Get(logging.CategoryRender)

	if err := em.Begin(s); err != nil {
		return s, err
	}

	var norm *big.Rat
	if opts.Check {
		norm = new(big.Rat)
	}

	visit := func(d guga.Determinant) error {
		if opts.MaxDeterminants > 0 && s.Emitted >= opts.MaxDeterminants {
			s.Truncated = true
			return guga.ErrStop
		}
		if err := em.Determinant(d); err != nil {
			return err
		}
		if norm != nil {
			norm.Add(norm, d.Weight.Rat())
		}
		s.Emitted++
		return nil
	}

	if err := exp.WalkParallel(ctx, opts.Workers, opts.BatchSize, visit); err != nil {
		// End the partial expansion so buffered output reaches the writer.
		s.Truncated = true
		log.Info("expansion aborted",
			zap.String("stepvec", s.StepVector),
			zap.Int("determinants", s.Emitted),
			zap.Error(err))
		if endErr := em.End(s); endErr != nil {
			err = errors.Join(err, endErr)
		}
		return s, err
	}

	s.Norm = norm
	log.Debug("expansion emitted",
		zap.String("stepvec", s.StepVector),
		zap.Int("twoms", s.TwoMs),
		zap.Uint64("subsets", s.Subsets),
		zap.Int("determinants", s.Emitted),
		zap.Bool("truncated", s.Truncated))

	return s, em.End(s)
}
