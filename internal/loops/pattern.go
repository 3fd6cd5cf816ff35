package loops

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/san-kum/algoviz/internal/step"
)

type Pattern string

const (
	RightTriangle    Pattern = "triangle"
	Square           Pattern = "square"
	InvertedTriangle Pattern = "inverted"
	NumberTriangle   Pattern = "number"
)

func Patterns() []Pattern {
	return []Pattern{RightTriangle, Square, InvertedTriangle, NumberTriangle}
}

// cells returns how many cells row i (1-based) of the pattern prints.
func (p Pattern) cells(i, rows int) int {
	switch p {
	case Square:
		return rows
	case InvertedTriangle:
		return rows - i + 1
	default:
		return i
	}
}

func (p Pattern) cell(j int) string {
	if p == NumberTriangle {
		return strconv.Itoa(j)
	}
	return "*"
}

// Stars draws a pattern row by row. Each row yields an outer step, one inner
// step per printed cell, and the run ends with a done step holding the
// complete output.
func Stars(p Pattern, rows int) (step.Producer, error) {
	if !slices.Contains(Patterns(), p) {
		return nil, fmt.Errorf("%w: %s", ErrPattern, p)
	}
	if rows < 1 || rows > MaxRows {
		return nil, fmt.Errorf("%w: %d", ErrRows, rows)
	}
	return func(yield func(step.Step) bool) {
		t := newTrace()
		t.vars["rows"] = rows
		for i := 1; i <= rows; i++ {
			n := p.cells(i, rows)
			t.vars["i"] = i
			t.vars["cells"] = n
			delete(t.vars, "j")
			t.c.Pass++
			if !yield(t.snap(step.PhaseOuter, fmt.Sprintf("row %d prints %d", i, n))) {
				return
			}
			for j := 1; j <= n; j++ {
				t.vars["j"] = j
				t.c.Writes++
				if j > 1 {
					t.out.WriteByte(' ')
				}
				t.out.WriteString(p.cell(j))
				if !yield(t.snap(step.PhaseInner, fmt.Sprintf("print %s", p.cell(j)))) {
					return
				}
			}
			t.out.WriteByte('\n')
		}
		yield(t.snap(step.PhaseDone, fmt.Sprintf("%s pattern with %d rows", p, rows)))
	}, nil
}
