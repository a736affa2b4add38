package render

import (
	"errors"
	"fmt"
	"io"

	"csf2det/internal/guga"
)

const indent = "             "

// Diagnostic returns the user-facing lines for an expansion error, naming
// the flag to check. ok is false for errors that are not input errors.
func Diagnostic(err error) (lines []string, ok bool) {
	var (
		symErr  *guga.SymbolError
		spinErr *guga.SpinProjectionError
	)
	switch {
	case errors.As(err, &symErr):
		return []string{
			fmt.Sprintf("input error: illegal character '%c' in stepvector", symErr.Symbol),
			indent + "check the -s or --stepvec input string",
		}, true
	case errors.Is(err, guga.ErrEmptyStepVector):
		return []string{
			"input error: no orbitals in stepvector",
			indent + "check the -s or --stepvec input string",
		}, true
	case errors.Is(err, guga.ErrNegativeSpinCounter):
		return []string{
			"input error: invalid ud ordering in stepvector",
			indent + "check the -s or --stepvec input string",
		}, true
	case errors.As(err, &spinErr) && errors.Is(err, guga.ErrSpinProjectionOutOfRange):
		return []string{
			"input error: exceeded maximum Ms value of",
			fmt.Sprintf("%s-/+ %d half integer units", indent, spinErr.Spin),
			indent + "check the -m or --twoms input value",
		}, true
	case errors.As(err, &spinErr) && errors.Is(err, guga.ErrSpinProjectionParityMismatch):
		parity := "EVEN"
		if spinErr.Spin%2 != 0 {
			parity = "ODD"
		}
		return []string{
			fmt.Sprintf("input error: Ms should be an %s number of half integers", parity),
			indent + "check the -m or --twoms input value",
		}, true
	case errors.Is(err, guga.ErrInvalidAlphaCount):
		return []string{
			"input error: no determinants for the requested Ms",
			indent + "check the -m or --twoms input value",
		}, true
	}
	return nil, false
}

// WriteDiagnostic writes Diagnostic(err) to w, one line each, falling back
// to the error text for errors that are not input errors.
func WriteDiagnostic(w io.Writer, err error) {
	lines, ok := Diagnostic(err)
	if !ok {
		lines = []string{"error: " + err.Error()}
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
