// Package render writes CSF expansions in the supported output formats.
//
// The text format reproduces the classic csf2det layout byte for byte; json
// and yaml emit one document per expansion; table draws a styled table.
package render

import (
	"fmt"
	"io"
	"math/big"

	"csf2det/internal/config"
	"csf2det/internal/guga"
)

// Summary describes one expansion. Emitters receive it before the first
// and after the last determinant; the counters are only final in End.
type Summary struct {
	Name       string // job name in batch mode
	StepVector string // as given on input
	TwoMs      int
	Electrons  int
	Orbitals   int
	Spin       int
	Subsets    uint64 // alpha assignments visited
	Emitted    int
	Truncated  bool     // the determinant cap was hit
	Norm       *big.Rat // sum of weights, nil unless requested
}

// NewSummary fills the static part of a summary from an expansion.
func NewSummary(name, stepvec string, exp *guga.Expansion) Summary {
	return Summary{
		Name:       name,
		StepVector: stepvec,
		TwoMs:      exp.Params.TwoMs,
		Electrons:  exp.Params.Electrons,
		Orbitals:   exp.Params.Orbitals,
		Spin:       exp.Params.Spin,
		Subsets:    exp.Subsets(),
	}
}

// Emitter receives one expansion at a time.
type Emitter interface {
	Begin(s Summary) error
	Determinant(d guga.Determinant) error
	End(s Summary) error
}

// Options tune emitters that support them.
type Options struct {
	Color bool
}

// New returns the emitter for format writing to w.
func New(format string, w io.Writer, opts Options) (Emitter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextEmitter(w), nil
	case config.FormatJSON:
		return NewJSONEmitter(w), nil
	case config.FormatYAML:
		return NewYAMLEmitter(w), nil
	case config.FormatTable:
		return NewTableEmitter(w, opts.Color), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (valid: %v)", format, config.ValidFormats)
	}
}
