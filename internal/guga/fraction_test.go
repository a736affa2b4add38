package guga

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFraction_Simplify(t *testing.T) {
	tests := []struct {
		in   Fraction
		want Fraction
	}{
		{Fraction{2, 4}, Fraction{1, 2}},
		{Fraction{6, 9}, Fraction{2, 3}},
		{Fraction{5, 7}, Fraction{5, 7}},
		{Fraction{12, 12}, Fraction{1, 1}},
		{Fraction{0, 12}, Fraction{0, 12}},
		{Fraction{0, 0}, Fraction{0, 0}},
	}
	for _, tt := range tests {
		f := tt.in
		f.Simplify()
		assert.Equal(t, tt.want, f, "simplify %v", tt.in)
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(6), gcd(12, 18))
	assert.Equal(t, int64(1), gcd(7, 13))
	assert.Equal(t, int64(5), gcd(5, 0))
	assert.Equal(t, int64(4), gcd(-8, 12))
}

func TestFraction_Rat(t *testing.T) {
	assert.Equal(t, 0, big.NewRat(1, 3).Cmp(Fraction{2, 6}.Rat()))
	assert.Equal(t, 0, new(big.Rat).Cmp(Fraction{0, 0}.Rat()))
	assert.Equal(t, "3/4", Fraction{3, 4}.String())
	assert.True(t, Fraction{0, 5}.IsZero())
}

func TestFraction_Scale(t *testing.T) {
	f := Fraction{3, 4}
	assert.True(t, f.Scale(5, 6))
	assert.Equal(t, Fraction{15, 24}, f)

	f = Fraction{1, math.MaxInt64 / 2}
	assert.False(t, f.Scale(1, 3))
	assert.Equal(t, Fraction{1, math.MaxInt64 / 2}, f, "left unchanged on overflow")

	f = Fraction{math.MinInt64, 1}
	assert.False(t, f.Scale(-1, 1))

	f = Fraction{0, 1 << 62}
	assert.True(t, f.Scale(0, 1))
}

func TestFraction_RatZeroDenominator(t *testing.T) {
	assert.Equal(t, 0, Fraction{1, 0}.Rat().Sign())
}
