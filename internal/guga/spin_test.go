package guga

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, stepvec string, twoMs int) (SpinParameters, error) {
	t.Helper()
	sv := mustParse(t, stepvec)
	tab, err := BuildPaldusTable(sv)
	require.NoError(t, err)
	return ResolveSpin(sv, tab, twoMs)
}

func TestResolveSpin(t *testing.T) {
	tests := []struct {
		name      string
		stepvec   string
		twoMs     int
		electrons int
		spin      int
		nAlpha    int
	}{
		{"closed shell", "2", 0, 2, 0, 0},
		{"doublet up", "u", 1, 1, 1, 1},
		{"doublet down", "u", -1, 1, 1, 0},
		{"triplet ms0", "uu", 0, 2, 2, 1},
		{"triplet ms1", "uu", 2, 2, 2, 2},
		{"singlet", "ud", 0, 2, 0, 1},
		{"mixed", "2udu u0", 2, 6, 2, 3},
		{"quartet low", "uuu", -3, 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := resolve(t, tt.stepvec, tt.twoMs)
			require.NoError(t, err)
			assert.Equal(t, tt.electrons, p.Electrons)
			assert.Equal(t, tt.spin, p.Spin)
			assert.Equal(t, tt.nAlpha, p.NAlpha)
			assert.Equal(t, p.NSOMO-p.NAlpha, p.NBeta())
			assert.Equal(t, tt.twoMs, p.TwoMs)
		})
	}
}

func TestResolveSpin_OutOfRange(t *testing.T) {
	_, err := resolve(t, "uu", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSpinProjectionOutOfRange))

	var spErr *SpinProjectionError
	require.True(t, errors.As(err, &spErr))
	assert.Equal(t, 3, spErr.TwoMs)
	assert.Equal(t, 2, spErr.Spin)

	_, err = resolve(t, "ud", -2)
	assert.ErrorIs(t, err, ErrSpinProjectionOutOfRange)
}

func TestResolveSpin_RangeCheckedFirst(t *testing.T) {
	// 2S = 0, so 2Ms = 1 fails the range check before parity is looked at.
	_, err := resolve(t, "2", 1)
	assert.ErrorIs(t, err, ErrSpinProjectionOutOfRange)
}

func TestResolveSpin_Parity(t *testing.T) {
	tests := []struct {
		stepvec string
		twoMs   int
	}{
		{"uu", 1},
		{"u", 0},
		{"uuu", 2},
		{"uuud", 1},
	}
	for _, tt := range tests {
		_, err := resolve(t, tt.stepvec, tt.twoMs)
		assert.ErrorIs(t, err, ErrSpinProjectionParityMismatch, "%s with 2Ms=%d", tt.stepvec, tt.twoMs)
	}
}

// n_somo and 2S share parity for every valid step-vector, so the alpha
// count is always an exact half.
func TestResolveSpin_SomoParity(t *testing.T) {
	forEachStepVector(6, func(s string) {
		sv := mustParse(t, s)
		tab, err := BuildPaldusTable(sv)
		require.NoError(t, err)
		assert.Equal(t, sv.NSOMO%2, tab.Spin()%2, s)
	})
}
