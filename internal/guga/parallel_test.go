package guga

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func walkParallel(t *testing.T, exp *Expansion, workers, batch int) []Determinant {
	t.Helper()
	var dets []Determinant
	err := exp.WalkParallel(context.Background(), workers, batch, func(d Determinant) error {
		dets = append(dets, d)
		return nil
	})
	require.NoError(t, err)
	return dets
}

func TestWalkParallel_MatchesWalk(t *testing.T) {
	defer goleak.VerifyNone(t)

	cases := []struct {
		stepvec string
		twoMs   int
	}{
		{"2", 0},
		{"uu", 0},
		{"uudd", 0},
		{"2udu u0", 0},
		{"uuuuuuuu", 0},
		{"uuduuddu0u2", 1},
	}
	for _, tc := range cases {
		exp, err := New(tc.stepvec, tc.twoMs)
		require.NoError(t, err)
		want, err := exp.Determinants()
		require.NoError(t, err)

		for _, workers := range []int{1, 2, 4, 8} {
			for _, batch := range []int{0, 1, 3, 64} {
				got := walkParallel(t, exp, workers, batch)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%s 2Ms=%d workers=%d batch=%d (-want +got):\n%s",
						tc.stepvec, tc.twoMs, workers, batch, diff)
				}
			}
		}
	}
}

func TestWalkParallel_CallbackError(t *testing.T) {
	defer goleak.VerifyNone(t)

	exp, err := New("uuuuuuuuuu", 0)
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	err = exp.WalkParallel(context.Background(), 4, 2, func(Determinant) error {
		calls++
		if calls == 5 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 5, calls)
}

func TestWalkParallel_Stop(t *testing.T) {
	defer goleak.VerifyNone(t)

	exp, err := New("uuuuuuuuuu", 2)
	require.NoError(t, err)

	calls := 0
	err = exp.WalkParallel(context.Background(), 3, 4, func(Determinant) error {
		calls++
		return ErrStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWalkParallel_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	exp, err := New("uuuuuuuuuuuu", 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err = exp.WalkParallel(ctx, 4, 1, func(Determinant) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}

func TestWalkParallel_CancelledSequential(t *testing.T) {
	exp, err := New("uuuuuuuu", 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err = exp.WalkParallel(ctx, 1, 0, func(Determinant) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	calls = 0
	err = exp.WalkContext(ctx, func(Determinant) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}
