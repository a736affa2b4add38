package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"csf2det/internal/guga"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	colorPositive = lipgloss.Color("#8BC34A") // Lime Green
	colorNegative = lipgloss.Color("#e53935") // Red
	colorMuted    = lipgloss.Color("#6b7a90")
	colorTitle    = lipgloss.Color("#2196F3") // Blue
)

type tableStyles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Sep      lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
}

func newTableStyles(color bool) tableStyles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	s := tableStyles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   cell.Bold(true),
		Cell:     cell,
		Sep:      lipgloss.NewStyle(),
		Positive: cell,
		Negative: cell,
	}
	if color {
		s.Title = s.Title.Foreground(colorTitle)
		s.Sep = s.Sep.Foreground(colorMuted)
		s.Positive = cell.Foreground(colorPositive)
		s.Negative = cell.Foreground(colorNegative)
	}
	return s
}

var tableHeaders = []string{"#", "phase", "C^2", "determinant"}

// TableEmitter draws each expansion as a table once it is complete.
type TableEmitter struct {
	w      io.Writer
	styles tableStyles
	title  string
	rows   [][]string
	phases []int
}

// NewTableEmitter returns a TableEmitter; color enables coloured signs.
func NewTableEmitter(w io.Writer, color bool) *TableEmitter {
	return &TableEmitter{w: w, styles: newTableStyles(color)}
}

func (e *TableEmitter) Begin(s Summary) error {
	e.title = fmt.Sprintf("%d electrons in %d orbitals (2S=%d, 2Ms=%d)", s.Electrons, s.Orbitals, s.Spin, s.TwoMs)
	if s.Name != "" {
		e.title = s.Name + ": " + e.title
	}
	e.rows = e.rows[:0]
	e.phases = e.phases[:0]
	return nil
}

func (e *TableEmitter) Determinant(d guga.Determinant) error {
	e.rows = append(e.rows, []string{
		strconv.Itoa(len(e.rows) + 1),
		string(d.Sign()),
		d.Weight.String(),
		d.Symbols(),
	})
	e.phases = append(e.phases, d.Phase)
	return nil
}

func (e *TableEmitter) End(s Summary) error {
	var sb strings.Builder
	st := e.styles

	sb.WriteString(st.Title.Render(e.title))
	sb.WriteString("\n")

	// Calculate column widths
	colWidths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range e.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	// Width includes the padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	for i, h := range tableHeaders {
		sb.WriteString(st.Header.Width(colWidths[i]).Render(h))
		if i < len(tableHeaders)-1 {
			sb.WriteString(st.Sep.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(tableHeaders) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(st.Sep.Render(strings.Repeat("-", totalWidth)) + "\n")

	for r, row := range e.rows {
		for i, cell := range row {
			style := st.Cell
			if i == 1 {
				style = st.Positive
				if e.phases[r] < 0 {
					style = st.Negative
				}
			}
			sb.WriteString(style.Width(colWidths[i]).Render(cell))
			if i < len(row)-1 {
				sb.WriteString(st.Sep.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	if s.Truncated {
		fmt.Fprintf(&sb, "truncated after %d determinants\n", s.Emitted)
	}
	if s.Norm != nil {
		fmt.Fprintf(&sb, "sum of C^2 = %s\n", s.Norm.RatString())
	}
	sb.WriteString("\n")

	_, err := io.WriteString(e.w, sb.String())
	return err
}
