package guga

import (
	"errors"
	"fmt"
)

// Expansion errors. Every failure is fatal to the current expansion.
var (
	// ErrInvalidStepVectorSymbol is returned when the step-vector contains a
	// character outside {'0', 'u', 'd', '2', ' '}.
	ErrInvalidStepVectorSymbol = errors.New("invalid step-vector symbol")

	// ErrEmptyStepVector is returned when the step-vector holds no orbitals.
	ErrEmptyStepVector = errors.New("step-vector has no orbitals")

	// ErrNegativeSpinCounter is returned when a 'd' step is not preceded by
	// enough excess alpha coupling.
	ErrNegativeSpinCounter = errors.New("negative spin counter")

	// ErrSpinProjectionOutOfRange is returned when |2Ms| exceeds 2S.
	ErrSpinProjectionOutOfRange = errors.New("spin projection out of range")

	// ErrSpinProjectionParityMismatch is returned when 2Ms and 2S differ in parity.
	ErrSpinProjectionParityMismatch = errors.New("spin projection parity mismatch")

	// ErrInvalidAlphaCount is returned when the alpha count is outside [0, n_somo].
	ErrInvalidAlphaCount = errors.New("invalid alpha count")

	// ErrCoefficientOverflow is returned when a coefficient no longer fits
	// in 64-bit integers.
	ErrCoefficientOverflow = errors.New("coefficient overflow")
)

// SymbolError reports an unrecognised character in a step-vector.
type SymbolError struct {
	Symbol   rune
	Position int // index into the input string, spaces included
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %q at position %d", ErrInvalidStepVectorSymbol, e.Symbol, e.Position)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidStepVectorSymbol }

// SpinCounterError reports the first orbital whose b counter went negative.
type SpinCounterError struct {
	Orbital int
	Value   int
}

func (e *SpinCounterError) Error() string {
	return fmt.Sprintf("%s: b = %d at orbital %d", ErrNegativeSpinCounter, e.Value, e.Orbital)
}

func (e *SpinCounterError) Unwrap() error { return ErrNegativeSpinCounter }

// SpinProjectionError reports a requested 2Ms that the CSF cannot carry.
// Kind is ErrSpinProjectionOutOfRange or ErrSpinProjectionParityMismatch.
type SpinProjectionError struct {
	Kind  error
	TwoMs int
	Spin  int // total spin in half units
}

func (e *SpinProjectionError) Error() string {
	return fmt.Sprintf("%s: 2Ms = %d, 2S = %d", e.Kind, e.TwoMs, e.Spin)
}

func (e *SpinProjectionError) Unwrap() error { return e.Kind }

// AlphaCountError reports a subset size outside [0, n].
type AlphaCountError struct {
	K int
	N int
}

func (e *AlphaCountError) Error() string {
	return fmt.Sprintf("%s: %d out of %d", ErrInvalidAlphaCount, e.K, e.N)
}

func (e *AlphaCountError) Unwrap() error { return ErrInvalidAlphaCount }

// OverflowError reports the orbital at which a coefficient overflowed.
type OverflowError struct {
	Orbital int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s at orbital %d", ErrCoefficientOverflow, e.Orbital)
}

func (e *OverflowError) Unwrap() error { return ErrCoefficientOverflow }
