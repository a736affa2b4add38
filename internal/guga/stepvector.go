// Package guga expands a configuration state function, written as a GUGA
// step-vector, into the Slater determinants it is built from.
//
// The pipeline is linear: ParseStepVector decodes the occupation string,
// BuildPaldusTable derives the distinct-row-table counters, ResolveSpin checks
// the requested spin projection, and an Expansion enumerates every alpha/beta
// assignment and evaluates its coefficient exactly.
package guga

import "strings"

// Occupation is the step code of a single orbital.
type Occupation uint8

const (
	Unoccupied Occupation = iota // '0'
	SingleUp                     // 'u', couples up
	SingleDown                   // 'd', couples down
	Double                       // '2'
)

// Symbol returns the step-vector character for the occupation.
func (o Occupation) Symbol() byte {
	switch o {
	case Unoccupied:
		return '0'
	case SingleUp:
		return 'u'
	case SingleDown:
		return 'd'
	case Double:
		return '2'
	}
	return '?'
}

func (o Occupation) String() string {
	switch o {
	case Unoccupied:
		return "unoccupied"
	case SingleUp:
		return "single-up"
	case SingleDown:
		return "single-down"
	case Double:
		return "double"
	}
	return "unknown"
}

// IsSingle reports whether the orbital holds one electron.
func (o Occupation) IsSingle() bool {
	return o == SingleUp || o == SingleDown
}

// StepVector is a decoded occupation string.
type StepVector struct {
	Codes []Occupation
	NSOMO int // singly occupied orbitals
	NDOMO int // doubly occupied orbitals
}

// ParseStepVector decodes s into per-orbital occupation codes. Spaces are
// visual separators only. Any other character outside {'0','u','d','2'}
// yields a *SymbolError and no partial result.
func ParseStepVector(s string) (StepVector, error) {
	var sv StepVector
	codes := make([]Occupation, 0, len(s))
	for pos, r := range []rune(s) {
		switch r {
		case '0':
			codes = append(codes, Unoccupied)
		case 'u':
			codes = append(codes, SingleUp)
			sv.NSOMO++
		case 'd':
			codes = append(codes, SingleDown)
			sv.NSOMO++
		case '2':
			codes = append(codes, Double)
			sv.NDOMO++
		case ' ':
		default:
			return StepVector{}, &SymbolError{Symbol: r, Position: pos}
		}
	}
	if len(codes) == 0 {
		return StepVector{}, ErrEmptyStepVector
	}
	sv.Codes = codes
	return sv, nil
}

// Len returns the number of orbitals.
func (sv StepVector) Len() int { return len(sv.Codes) }

// String renders the step-vector without separators.
func (sv StepVector) String() string {
	var sb strings.Builder
	sb.Grow(len(sv.Codes))
	for _, c := range sv.Codes {
		sb.WriteByte(c.Symbol())
	}
	return sb.String()
}
