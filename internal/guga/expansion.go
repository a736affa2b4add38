package guga

import (
	"context"
	"errors"
	"math/big"
)

// ErrStop can be returned from a walk callback to end the walk early
// without reporting an error.
var ErrStop = errors.New("stop walk")

// Expansion is a validated CSF ready to be expanded. It is read-only after
// construction and safe for concurrent walks.
type Expansion struct {
	StepVector StepVector
	Table      PaldusTable
	Params     SpinParameters
}

// New parses stepvec, builds the Paldus table and validates twoMs.
func New(stepvec string, twoMs int) (*Expansion, error) {
	sv, err := ParseStepVector(stepvec)
	if err != nil {
		return nil, err
	}
	t, err := BuildPaldusTable(sv)
	if err != nil {
		return nil, err
	}
	p, err := ResolveSpin(sv, t, twoMs)
	if err != nil {
		return nil, err
	}
	if p.NAlpha < 0 || p.NAlpha > p.NSOMO {
		return nil, &AlphaCountError{K: p.NAlpha, N: p.NSOMO}
	}
	return &Expansion{StepVector: sv, Table: t, Params: p}, nil
}

// Subsets returns the number of alpha assignments the walk visits, zero
// weights included.
func (e *Expansion) Subsets() uint64 {
	return Binomial(e.Params.NSOMO, e.Params.NAlpha)
}

// Walk evaluates every alpha subset in lexicographic order and calls fn for
// each determinant with a non-zero coefficient. Returning ErrStop from fn
// ends the walk with a nil error; any other error is returned as is.
func (e *Expansion) Walk(fn func(Determinant) error) error {
	return e.WalkContext(context.Background(), fn)
}

// WalkContext is Walk that also stops with ctx.Err() once ctx is done.
// The context is checked before every subset.
func (e *Expansion) WalkContext(ctx context.Context, fn func(Determinant) error) error {
	comb, err := NewCombination(e.Params.NSOMO, e.Params.NAlpha)
	if err != nil {
		return err
	}
	ev := newEvaluator(e.StepVector, e.Table)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		det, ok, err := ev.evaluate(comb.Indices())
		if err != nil {
			return err
		}
		if ok {
			if err := fn(det); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		if !comb.Next() {
			return nil
		}
	}
}

// Determinants collects the whole expansion.
func (e *Expansion) Determinants() ([]Determinant, error) {
	var dets []Determinant
	err := e.Walk(func(d Determinant) error {
		dets = append(dets, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dets, nil
}

// Norm returns the sum of the weights of dets. For a complete expansion it
// is exactly one.
func Norm(dets []Determinant) *big.Rat {
	sum := new(big.Rat)
	for _, d := range dets {
		sum.Add(sum, d.Weight.Rat())
	}
	return sum
}
