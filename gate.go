package qsim

import "fmt"

/*
Gate is a unitary operator bound to the number of qubits it acts on. It is
one concrete value type; the named gates in gates.go are factories that
return differently parameterized Gates.

Unitarity is the caller's obligation and is not checked here. Matrix.IsUnitary
is available when that matters.
*/
type Gate struct {
	width  int
	matrix Matrix
}

// NewGate panics unless m is 2^width square.
func NewGate(width int, m Matrix) Gate {
	if width < 1 {
		violate(ErrBadShape, "gate width %d", width)
	}

	if m.Size() != 1<<width {
		violate(ErrDimensionMismatch, "width %d gate needs a %dx%d operator, got %dx%d",
			width, 1<<width, 1<<width, m.Size(), m.Size())
	}

	return Gate{width: width, matrix: m.Clone()}
}

func (g Gate) Width() int {
	return g.width
}

// Matrix returns a copy of the operator so the gate stays immutable.
func (g Gate) Matrix() Matrix {
	return g.matrix.Clone()
}

func (g Gate) Equal(o Gate) bool {
	return g.width == o.width && g.matrix.Equal(o.matrix)
}

/*
Controlled returns a fresh gate one qubit wider that applies g to the
trailing qubits only when the new leading qubit is |1⟩: identity on the
upper-left block, g's operator on the lower-right block.
*/
func (g Gate) Controlled() Gate {
	d := g.matrix.Size()
	m := NewZeroMatrix(2 * d)
	m.Embed(Identity(d), 0, 0)
	m.Embed(g.matrix, d, d)

	return NewGate(g.width+1, m)
}

func (g Gate) String() string {
	return fmt.Sprintf("Gate(width=%d)\n%s", g.width, g.matrix)
}
