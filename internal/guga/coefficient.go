package guga

import "strings"

// Spin is the per-orbital symbol of a Slater determinant.
type Spin byte

const (
	SpinEmpty  Spin = '0'
	SpinAlpha  Spin = 'a'
	SpinBeta   Spin = 'b'
	SpinPaired Spin = '2'
)

// Determinant is one term of the CSF expansion: Phase * Weight is the
// squared coefficient of the determinant described by Spins.
type Determinant struct {
	Phase  int // +1 or -1
	Weight Fraction
	Spins  []Spin
}

// Sign returns '+' or '-'.
func (d Determinant) Sign() byte {
	if d.Phase < 0 {
		return '-'
	}
	return '+'
}

// Symbols returns the orbital symbols separated by single spaces.
func (d Determinant) Symbols() string {
	var sb strings.Builder
	sb.Grow(2 * len(d.Spins))
	for i, s := range d.Spins {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(s))
	}
	return sb.String()
}

// evaluator applies the GUGA step rules to one alpha subset at a time. Its
// buffers are rebuilt for every subset, so an evaluator must not be shared
// between goroutines.
type evaluator struct {
	sv    StepVector
	table PaldusTable
	alpha []bool
	spins []Spin
}

func newEvaluator(sv StepVector, t PaldusTable) *evaluator {
	return &evaluator{
		sv:    sv,
		table: t,
		alpha: make([]bool, sv.NSOMO),
		spins: make([]Spin, sv.Len()),
	}
}

// evaluate computes the determinant selected by subset, the indices of the
// singly occupied orbitals that carry alpha spin. ok is false when the
// coefficient vanishes exactly. An *OverflowError is returned when the
// fraction outgrows int64.
func (e *evaluator) evaluate(subset []int) (det Determinant, ok bool, err error) {
	for i := range e.alpha {
		e.alpha[i] = false
	}
	for _, idx := range subset {
		e.alpha[idx] = true
	}

	a, b := e.table.A, e.table.B
	phase := 1
	w := One
	nAlpha, nBeta, somo := 0, 0, 0

	for i, code := range e.sv.Codes {
		num, den := int64(1), int64(1)
		switch code {
		case Unoccupied:
			e.spins[i] = SpinEmpty
		case SingleUp:
			if e.alpha[somo] {
				e.spins[i] = SpinAlpha
				num = int64(a[i] + b[i] - nBeta)
				nAlpha++
			} else {
				e.spins[i] = SpinBeta
				num = int64(a[i] + b[i] - nAlpha)
				nBeta++
			}
			den = int64(b[i])
			somo++
		case SingleDown:
			if e.alpha[somo] {
				e.spins[i] = SpinAlpha
				num = int64(nBeta - a[i] + 1)
				nAlpha++
				if b[i]%2 == 0 {
					phase = -phase
				}
			} else {
				e.spins[i] = SpinBeta
				num = int64(nAlpha - a[i] + 1)
				nBeta++
				if b[i]%2 != 0 {
					phase = -phase
				}
			}
			den = int64(b[i] + 2)
			somo++
		case Double:
			e.spins[i] = SpinPaired
			if b[i]%2 != 0 {
				phase = -phase
			}
			nAlpha++
			nBeta++
		}
		// A vanished weight stays zero; only live fractions can overflow.
		if !w.IsZero() && !w.Scale(num, den) {
			return Determinant{}, false, &OverflowError{Orbital: i}
		}
		w.Simplify()
	}

	if w.IsZero() {
		return Determinant{}, false, nil
	}
	spins := make([]Spin, len(e.spins))
	copy(spins, e.spins)
	return Determinant{Phase: phase, Weight: w, Spins: spins}, true, nil
}
