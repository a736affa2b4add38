package render

import (
	"bufio"
	"fmt"
	"io"

	"csf2det/internal/guga"
)

// TextEmitter writes the classic layout:
//
//	6 electrons in 6 orbitals
//	output = phase * C^2 * SD
//	   +   1/2        | 2 a b a a 0 |
type TextEmitter struct {
	w   io.Writer
	buf *bufio.Writer
}

// NewTextEmitter returns a TextEmitter writing to w.
func NewTextEmitter(w io.Writer) *TextEmitter {
	return &TextEmitter{w: w}
}

func (e *TextEmitter) Begin(s Summary) error {
	e.buf = bufio.NewWriter(e.w)
	if s.Name != "" {
		fmt.Fprintf(e.buf, "# %s\n", s.Name)
	}
	fmt.Fprintf(e.buf, "%d electrons in %d orbitals\n", s.Electrons, s.Orbitals)
	fmt.Fprintln(e.buf, "output = phase * C^2 * SD")
	return nil
}

func (e *TextEmitter) Determinant(d guga.Determinant) error {
	fmt.Fprintf(e.buf, " %3c %3d/%-8d |", d.Sign(), d.Weight.Num, d.Weight.Den)
	for _, s := range d.Spins {
		fmt.Fprintf(e.buf, " %c", s)
	}
	_, err := e.buf.WriteString(" |\n")
	return err
}

func (e *TextEmitter) End(s Summary) error {
	if s.Truncated {
		fmt.Fprintf(e.buf, "truncated after %d determinants\n", s.Emitted)
	}
	if s.Norm != nil {
		fmt.Fprintf(e.buf, "sum of C^2 = %s\n", s.Norm.RatString())
	}
	return e.buf.Flush()
}
