package guga

// Combination walks the k-subsets of {0, ..., n-1} in lexicographic order.
// The index slice is updated in place by Next.
type Combination struct {
	n   int
	k   int
	lex []int
}

// NewCombination returns the enumerator positioned at {0, ..., k-1}.
func NewCombination(n, k int) (*Combination, error) {
	if k < 0 || n < 0 || k > n {
		return nil, &AlphaCountError{K: k, N: n}
	}
	c := &Combination{n: n, k: k, lex: make([]int, k)}
	c.Reset()
	return c, nil
}

// Reset rewinds to the lexicographically first subset.
func (c *Combination) Reset() {
	for i := range c.lex {
		c.lex[i] = i
	}
}

// Indices returns the current subset. The slice is owned by the enumerator
// and is overwritten by Next; copy it to keep it.
func (c *Combination) Indices() []int { return c.lex }

// N returns the size of the underlying set.
func (c *Combination) N() int { return c.n }

// K returns the subset size.
func (c *Combination) K() int { return c.k }

// Next advances to the successor subset. It returns false, leaving the
// state unchanged, once the last subset {n-k, ..., n-1} has been reached.
func (c *Combination) Next() bool {
	p := c.k - 1
	for p >= 0 && c.lex[p] == c.n-c.k+p {
		p--
	}
	if p < 0 {
		return false
	}
	c.lex[p]++
	for i := p + 1; i < c.k; i++ {
		c.lex[i] = c.lex[i-1] + 1
	}
	return true
}

// Binomial returns C(n, k), or 0 when k is outside [0, n].
func Binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := uint64(1)
	for i := 1; i <= k; i++ {
		// r * (n-k+i) is always divisible by i here.
		r = r * uint64(n-k+i) / uint64(i)
	}
	return r
}
