package guga

// SpinParameters are the scalars derived once per expansion.
type SpinParameters struct {
	Orbitals  int
	Electrons int
	Spin      int // 2S
	TwoMs     int
	NSOMO     int
	NDOMO     int
	NAlpha    int // singly occupied orbitals that carry alpha spin
}

// ResolveSpin validates twoMs against the table and derives the number of
// singly occupied orbitals that must be alpha.
//
// n_somo and 2S always share parity: every 'u' adds one to both, every 'd'
// adds one to n_somo and removes one from b. Once (2S + 2Ms) is even the
// alpha count is therefore an exact half.
func ResolveSpin(sv StepVector, t PaldusTable, twoMs int) (SpinParameters, error) {
	if t.Len() == 0 {
		return SpinParameters{}, ErrEmptyStepVector
	}
	spin := t.Spin()
	if abs(twoMs) > spin {
		return SpinParameters{}, &SpinProjectionError{Kind: ErrSpinProjectionOutOfRange, TwoMs: twoMs, Spin: spin}
	}
	if (spin+twoMs)%2 != 0 {
		return SpinParameters{}, &SpinProjectionError{Kind: ErrSpinProjectionParityMismatch, TwoMs: twoMs, Spin: spin}
	}

	return SpinParameters{
		Orbitals:  sv.Len(),
		Electrons: t.Electrons(),
		Spin:      spin,
		TwoMs:     twoMs,
		NSOMO:     sv.NSOMO,
		NDOMO:     sv.NDOMO,
		NAlpha:    (sv.NSOMO + twoMs) / 2,
	}, nil
}

// NBeta returns the singly occupied orbitals that carry beta spin.
func (p SpinParameters) NBeta() int { return p.NSOMO - p.NAlpha }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
