package guga

import (
	"fmt"
	"math"
	"math/big"
)

// Fraction is an exact non-negative rational. A zero numerator marks an
// identically vanishing coefficient; the denominator is then meaningless.
type Fraction struct {
	Num int64
	Den int64
}

// One is the multiplicative identity the coefficient walk starts from.
var One = Fraction{Num: 1, Den: 1}

// IsZero reports whether the fraction vanishes.
func (f Fraction) IsZero() bool { return f.Num == 0 }

// Simplify divides out the greatest common divisor. Zero numerators are left
// untouched so the reduction never divides by zero.
func (f *Fraction) Simplify() {
	if f.Num == 0 {
		return
	}
	if d := gcd(f.Num, f.Den); d > 1 {
		f.Num /= d
		f.Den /= d
	}
}

// Scale multiplies the numerator by num and the denominator by den. It
// reports false, leaving f unchanged, when either product overflows int64.
func (f *Fraction) Scale(num, den int64) bool {
	n, ok := mul64(f.Num, num)
	if !ok {
		return false
	}
	d, ok := mul64(f.Den, den)
	if !ok {
		return false
	}
	f.Num, f.Den = n, d
	return true
}

// Rat converts the fraction to a big.Rat. Zero fractions, and fractions
// with a zero denominator, map to 0.
func (f Fraction) Rat() *big.Rat {
	if f.Num == 0 || f.Den == 0 {
		return new(big.Rat)
	}
	return big.NewRat(f.Num, f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}
