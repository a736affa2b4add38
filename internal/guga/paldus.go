package guga

// PaldusTable holds the distinct-row-table counters after each orbital:
// A counts doubly occupied plus down-coupled orbitals, B the excess alpha
// coupling (2S so far) and C the unoccupied plus down-coupled orbitals.
type PaldusTable struct {
	A []int
	B []int
	C []int
}

// BuildPaldusTable derives the (a, b, c) prefix counters for sv. The b row is
// checked only once the whole table exists; the first negative entry is
// reported as a *SpinCounterError.
func BuildPaldusTable(sv StepVector) (PaldusTable, error) {
	n := sv.Len()
	if n == 0 {
		return PaldusTable{}, ErrEmptyStepVector
	}
	t := PaldusTable{
		A: make([]int, n),
		B: make([]int, n),
		C: make([]int, n),
	}

	a, b, c := 0, 0, 0
	for i, code := range sv.Codes {
		switch code {
		case Unoccupied:
			c++
		case SingleUp:
			b++
		case SingleDown:
			a++
			b--
			c++
		case Double:
			a++
		}
		t.A[i], t.B[i], t.C[i] = a, b, c
	}

	for i, v := range t.B {
		if v < 0 {
			return PaldusTable{}, &SpinCounterError{Orbital: i, Value: v}
		}
	}
	return t, nil
}

// Len returns the number of rows.
func (t PaldusTable) Len() int { return len(t.B) }

// Electrons returns 2a + b of the last row.
func (t PaldusTable) Electrons() int {
	last := t.Len() - 1
	return 2*t.A[last] + t.B[last]
}

// Spin returns the total spin in half units, b of the last row.
func (t PaldusTable) Spin() int {
	return t.B[t.Len()-1]
}
